package spreadsheet

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/asakit/asakit/pkg/errors"
)

func TestXLSXPath(t *testing.T) {
	assert.Equal(t, "output/a_b_import.xlsx", XLSXPath("output/a_b_import.csv"))
	assert.Equal(t, "noext.xlsx", XLSXPath("noext"))
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"1715185383", int64(1715185383)},
		{"1.5", 1.5},
		{"-2", int64(-2)},
		{"0.50", 0.5},
		{"0", int64(0)},
		{"007", "007"},
		{"", ""},
		{"coin", "coin"},
		{"Inf", "Inf"},
		{"NaN", "NaN"},
		{"1e5", "1e5"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, cellValue(tt.in))
		})
	}
}

func TestCSVToXLSX(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "import.csv")
	content := "Action,Keyword ID,Keyword,Bid,Campaign ID\nCREATE,,coin app,1.5,1715185383\nCREATE,,\"coin, rare\",0.2,1715185383\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	out, err := CSVToXLSX(csvPath, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "import.xlsx"), out)

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Action", "Keyword ID", "Keyword", "Bid", "Campaign ID"}, rows[0])
	assert.Equal(t, "coin, rare", rows[2][2])

	typ, err := f.GetCellType(SheetName, "D2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, typ)
	assert.NotEqual(t, excelize.CellTypeInlineString, typ)

	v, err := f.GetCellValue(SheetName, "E2")
	require.NoError(t, err)
	assert.Equal(t, "1715185383", v)
}

func TestCSVToXLSXExplicitPath(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "in.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("A\n1\n"), 0o644))

	target := filepath.Join(dir, "nested", "book.xlsx")
	out, err := CSVToXLSX(csvPath, target)
	require.NoError(t, err)
	assert.Equal(t, target, out)
	assert.FileExists(t, target)
}

func TestCSVToXLSXMissingInput(t *testing.T) {
	_, err := CSVToXLSX(filepath.Join(t.TempDir(), "missing.csv"), "")
	assert.True(t, errors.IsIOError(err))
}
