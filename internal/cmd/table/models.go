// Package table converts domain values into rows for table output.
package table

import (
	"strconv"
	"strings"

	"github.com/asakit/asakit/internal/diandian"
	"github.com/asakit/asakit/internal/searchads"
)

// Align represents column alignment in tables.
type Align int

const (
	// AlignDefault uses the default alignment (skip).
	AlignDefault Align = iota
	// AlignLeft aligns content to the left.
	AlignLeft
	// AlignCenter centers content.
	AlignCenter
	// AlignRight aligns content to the right.
	AlignRight
)

// Data represents table formatting data to avoid import cycles.
type Data struct {
	Headers         []string
	Rows            [][]string
	ColumnAlignment []Align // Optional: column alignment
}

// CampaignsToTableData converts campaigns to table format.
func CampaignsToTableData(campaigns []searchads.Campaign, showDetails bool) Data {
	headers := []string{"ID", "Name", "Status"}
	align := []Align{AlignRight, AlignLeft, AlignLeft}
	if showDetails {
		headers = append(headers, "Serving", "Budget", "Daily Budget", "Countries")
		align = append(align, AlignLeft, AlignRight, AlignRight, AlignLeft)
	}

	rows := make([][]string, 0, len(campaigns))
	for _, c := range campaigns {
		row := []string{strconv.FormatInt(c.ID, 10), c.Name, c.Status}
		if showDetails {
			row = append(row,
				dash(c.ServingStatus),
				FormatMoney(c.BudgetAmount),
				FormatMoney(c.DailyBudgetAmount),
				dash(strings.Join(c.CountriesOrRegions, ",")),
			)
		}
		rows = append(rows, row)
	}

	return Data{Headers: headers, Rows: rows, ColumnAlignment: align}
}

// HotWordsToTableData converts a diandian ranking to table format.
func HotWordsToTableData(words *diandian.HotWords) Data {
	rows := make([][]string, 0, len(words.Keywords))
	for _, w := range words.Keywords {
		rows = append(rows, []string{
			strconv.Itoa(w.Rank),
			w.Keyword,
			strconv.Itoa(w.SearchVolume),
		})
	}
	return Data{
		Headers:         []string{"Rank", "Keyword", "Volume (" + words.Date + ")"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft, AlignRight},
	}
}

// KeywordsToTableData lists keywords one per row.
func KeywordsToTableData(keywords []string) Data {
	rows := make([][]string, 0, len(keywords))
	for i, kw := range keywords {
		rows = append(rows, []string{strconv.Itoa(i + 1), kw})
	}
	return Data{
		Headers:         []string{"#", "Keyword"},
		Rows:            rows,
		ColumnAlignment: []Align{AlignRight, AlignLeft},
	}
}

// FormatMoney renders an amount as "100 USD" or "-".
func FormatMoney(m *searchads.Money) string {
	if m == nil || m.Amount == "" {
		return "-"
	}
	return strings.TrimSpace(m.Amount + " " + m.Currency)
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
