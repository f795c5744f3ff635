// Package importfile builds the bulk import CSV files accepted by Apple Search
// Ads and similar ad platforms from a keyword export.
package importfile

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/asakit/asakit/pkg/errors"
)

// Columns read from a keyword export.
const (
	ColKeyword   = "Keyword"
	ColStatus    = "Status"
	ColMatchType = "Match type"
	ColAdGroup   = "Ad group"
)

// ExportRow is one keyword of an ad group export, keyed by header name.
type ExportRow struct {
	Keyword   string
	Status    string
	MatchType string
	AdGroup   string
	Fields    map[string]string
}

// Enabled reports whether the row status is "enabled", ignoring case.
func (r ExportRow) Enabled() bool {
	return strings.EqualFold(r.Status, "enabled")
}

// ReadKeywordExport reads a keyword export CSV. The Keyword column is required,
// every other column is optional.
func ReadKeywordExport(path string) ([]ExportRow, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return ParseKeywordExport(bytes.NewReader(data), path)
}

// ParseKeywordExport parses a keyword export. name is only used in errors.
func ParseKeywordExport(r io.Reader, name string) ([]ExportRow, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err == io.EOF {
		return nil, errors.NewValidationError("header", name, "file is empty")
	}
	if err != nil {
		return nil, errors.WrapParse("csv", name, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(strings.TrimPrefix(header[i], "\ufeff"))
	}
	if !slices.Contains(header, ColKeyword) {
		return nil, errors.NewValidationError("header", header, "missing required column "+ColKeyword)
	}

	var rows []ExportRow
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.WrapParse("csv", name, err)
		}

		fields := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				fields[col] = record[i]
			}
		}
		rows = append(rows, ExportRow{
			Keyword:   fields[ColKeyword],
			Status:    fields[ColStatus],
			MatchType: fields[ColMatchType],
			AdGroup:   fields[ColAdGroup],
			Fields:    fields,
		})
	}
	return rows, nil
}
