package convert

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asakit/asakit/internal/cmd/application"
	"github.com/asakit/asakit/pkg/logging"
)

func TestXLSXCommand(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "import.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("Keyword,Bid\ncoin,1.5\n"), 0o644))

	cmd := NewCommand(&application.Mock{})
	cmd.SetArgs([]string{"xlsx", csvPath})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, filepath.Join(dir, "import.xlsx"))
}

func TestXLSXCommandTarget(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "import.csv")
	target := filepath.Join(dir, "book.xlsx")
	require.NoError(t, os.WriteFile(csvPath, []byte("Keyword\ncoin\n"), 0o644))

	cmd := NewCommand(&application.Mock{})
	cmd.SetArgs([]string{"xlsx", csvPath, target})
	require.NoError(t, cmd.Execute())
	assert.FileExists(t, target)
}

func TestXLSXCommandMissingInput(t *testing.T) {
	tl := logging.NewTestLogger(t)
	mock := &application.Mock{LoggerFunc: func() *zerolog.Logger { return tl.Logger }}

	cmd := NewCommand(mock)
	cmd.SetArgs([]string{"xlsx", filepath.Join(t.TempDir(), "missing.csv")})
	require.NoError(t, cmd.Execute())
	assert.True(t, tl.Contains("Error converting CSV to XLSX"))
}

func TestXLSXCommandArgs(t *testing.T) {
	cmd := NewCommand(&application.Mock{})
	cmd.SetArgs([]string{"xlsx"})
	assert.Error(t, cmd.Execute())
}
