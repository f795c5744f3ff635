// Package spreadsheet converts generated CSV import files into Excel workbooks.
package spreadsheet

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/errors"
	"github.com/asakit/asakit/pkg/keywords"
)

// SheetName is the worksheet the rows are written to.
const SheetName = "Sheet1"

// XLSXPath returns csvPath with its extension replaced by .xlsx.
func XLSXPath(csvPath string) string {
	return strings.TrimSuffix(csvPath, filepath.Ext(csvPath)) + ".xlsx"
}

// CSVToXLSX writes the rows of csvPath into a single-sheet workbook at xlsxPath
// and returns the path written. An empty xlsxPath means XLSXPath(csvPath).
// Cells holding a plain number are stored as numbers.
func CSVToXLSX(csvPath, xlsxPath string) (string, error) {
	if xlsxPath == "" {
		xlsxPath = XLSXPath(csvPath)
	}

	rows, err := keywords.ReadTable(csvPath)
	if err != nil {
		return "", err
	}
	if err := WriteRows(xlsxPath, rows); err != nil {
		return "", err
	}
	return xlsxPath, nil
}

// WriteRows writes rows into a new workbook at path, creating the parent
// directory when absent.
func WriteRows(path string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return errors.WrapResource("convert", "workbook", path, err)
		}
		values := make([]any, len(row))
		for j, v := range row {
			// header stays text
			if i == 0 {
				values[j] = v
				continue
			}
			values[j] = cellValue(v)
		}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return errors.WrapResource("convert", "workbook", path, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.WrapIO("write", path, err)
	}
	return nil
}

// cellValue returns v as int64 or float64 when it is a plain decimal number.
// Values with a leading zero such as "007" stay text.
func cellValue(v string) any {
	if v == "" || strings.Trim(v, "0123456789.-") != "" {
		return v
	}
	digits := strings.TrimPrefix(v, "-")
	if len(digits) > 1 && digits[0] == '0' && digits[1] != '.' {
		return v
	}
	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(v, 64); err == nil {
		return f
	}
	return v
}
