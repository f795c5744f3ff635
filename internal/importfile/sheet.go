package importfile

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/errors"
)

// Sheet is a header plus rows, written as one CSV file.
type Sheet struct {
	Header []string
	Rows   [][]string
}

// Len returns the number of data rows.
func (s Sheet) Len() int {
	return len(s.Rows)
}

// Write writes s to path as CSV, creating the parent directory when absent.
// Rows shorter than the header are padded with empty cells.
func Write(path string, s Sheet) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return errors.WrapIO("create", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, constants.FilePermissions)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}

	w := csv.NewWriter(f)
	records := make([][]string, 0, len(s.Rows)+1)
	records = append(records, s.Header)
	for _, row := range s.Rows {
		if len(row) < len(s.Header) {
			padded := make([]string, len(s.Header))
			copy(padded, row)
			row = padded
		}
		records = append(records, row)
	}
	if err := w.WriteAll(records); err != nil {
		_ = f.Close()
		return errors.WrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return errors.WrapIO("close", path, err)
	}
	return nil
}

// FormatBid renders a bid the way the import templates show it: shortest
// decimal with at least one fractional digit (1.0, 1.5, 0.2).
func FormatBid(bid float64) string {
	s := strconv.FormatFloat(bid, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
