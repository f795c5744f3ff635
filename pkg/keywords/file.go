package keywords

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/errors"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// ReadTable reads a UTF-8 CSV file into rows. Rows may have differing field counts.
func ReadTable(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return ParseTable(bytes.TrimPrefix(data, utf8BOM), path)
}

// ParseTable parses CSV content into rows. name is only used in errors.
func ParseTable(data []byte, name string) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	var rows [][]string
	for {
		row, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			line := 0
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				line = pe.Line
			}
			return nil, &errors.ParseError{Format: "csv", File: name, Line: line, Message: err.Error(), Err: err}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// ReadBlob reads a whole UTF-8 text file.
func ReadBlob(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.WrapIO("read", path, err)
	}
	return string(bytes.TrimPrefix(data, utf8BOM)), nil
}

// Persist writes keywords to path as a single comma separated line, sorted and
// de-duplicated as given, replacing any existing file. The parent directory is created
// when absent. It returns the number of keywords written.
func Persist(keywords []string, path string) (int, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
			return 0, errors.WrapIO("create", dir, err)
		}
	}

	unique := Unique(keywords)
	content := strings.Join(unique, ",")
	if err := os.WriteFile(path, []byte(content), constants.FilePermissions); err != nil {
		return 0, errors.WrapIO("write", path, err)
	}
	return len(unique), nil
}
