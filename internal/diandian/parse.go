// Package diandian scrapes the search-suggestion ranking published by
// app.diandian.com for a seed keyword.
//
// The page is rendered client side, so it is loaded in a headless browser
// (Fetcher) and the resulting HTML is parsed with ParseTable.
package diandian

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/asakit/asakit/pkg/errors"
)

// DateLayout is the format of HotWords.Date.
const DateLayout = "2006-01-02"

// HotWord is one ranked suggestion.
type HotWord struct {
	Keyword      string `json:"keyword" yaml:"keyword"`
	SearchVolume int    `json:"search_volume" yaml:"search_volume"`
	Rank         int    `json:"rank" yaml:"rank"`
}

// HotWords is the ranking for the most recent date shown in the table.
type HotWords struct {
	Date     string    `json:"date" yaml:"date"`
	Keywords []HotWord `json:"keywords" yaml:"keywords"`
}

// ParseTable extracts the ranking from a rendered page.
func ParseTable(html string) (*HotWords, error) {
	return ParseTableAt(html, time.Now())
}

// ParseTableAt is ParseTable with now used as the date when the table header
// carries no dates.
func ParseTableAt(html string, now time.Time) (*HotWords, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.WrapParse("html", "diandian page", err)
	}

	table := doc.Find("table.dd-data-table").First()
	if table.Length() == 0 {
		return nil, errors.NewNotFoundError("table.dd-data-table", "")
	}

	var dates []string
	table.Find("thead th").Each(func(i int, th *goquery.Selection) {
		// first column is the rank
		if i == 0 {
			return
		}
		dates = append(dates, strings.TrimSpace(th.Text()))
	})

	result := &HotWords{Date: now.Format(DateLayout), Keywords: []HotWord{}}
	if len(dates) > 0 {
		result.Date = dates[len(dates)-1]
	}

	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() < 2 {
			return
		}

		rank, ok := parseRank(cells.First())
		if !ok {
			return
		}

		latest := cells.Last()
		name := latest.Find("div.table-content-name").First()
		if name.Length() == 0 {
			return
		}

		volume := 0
		if v := latest.Find("div.dd-second-font-color").First(); v.Length() > 0 {
			if n, err := strconv.Atoi(strings.TrimSpace(v.Text())); err == nil {
				volume = n
			}
		}

		result.Keywords = append(result.Keywords, HotWord{
			Keyword:      strings.TrimSpace(name.Text()),
			SearchVolume: volume,
			Rank:         rank,
		})
	})

	sort.SliceStable(result.Keywords, func(i, j int) bool {
		return result.Keywords[i].Rank < result.Keywords[j].Rank
	})
	return result, nil
}

// parseRank reads the rank from the first cell. The top three are medal
// images, the rest plain numbers.
func parseRank(cell *goquery.Selection) (int, bool) {
	if img := cell.Find("img.ranking-img").First(); img.Length() > 0 {
		src, _ := img.Attr("src")
		switch {
		case strings.Contains(src, "first"):
			return 1, true
		case strings.Contains(src, "second"):
			return 2, true
		case strings.Contains(src, "third"):
			return 3, true
		}
		return 0, false
	}

	if span := cell.Find("span.rank-value").First(); span.Length() > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(span.Text()))
		return n, err == nil
	}
	return 0, false
}
