package output

import (
	"io"

	"github.com/asakit/asakit/internal/cmd/table"
	"github.com/asakit/asakit/internal/diandian"
	"github.com/asakit/asakit/internal/searchads"
)

func isTable(format Format) bool {
	return format == FormatTable || format == FormatWide || format == ""
}

// FormatCampaigns writes campaigns as a table (wide adds budget columns) or
// as the raw objects for json and yaml.
func FormatCampaigns(w io.Writer, campaigns []searchads.Campaign, format Format) error {
	var data any = campaigns
	if isTable(format) {
		data = table.CampaignsToTableData(campaigns, format == FormatWide)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatHotWords writes a diandian ranking.
func FormatHotWords(w io.Writer, words *diandian.HotWords, format Format) error {
	var data any = words
	if isTable(format) {
		data = table.HotWordsToTableData(words)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatKeywords writes a keyword list.
func FormatKeywords(w io.Writer, keywords []string, format Format) error {
	var data any = keywords
	if isTable(format) {
		data = table.KeywordsToTableData(keywords)
	}
	return NewFormatter(format).Format(w, data)
}

// FormatAny writes data with the formatter for format.
func FormatAny(w io.Writer, data any, format Format) error {
	return NewFormatter(format).Format(w, data)
}
