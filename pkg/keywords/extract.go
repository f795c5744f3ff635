package keywords

import (
	"fmt"
	"strings"

	"github.com/asakit/asakit/pkg/errors"
)

// ExtractExisting returns the canonical keywords found in column of every data
// row of table. The first row is a header and is skipped. A data row with
// fewer than column+1 fields fails the whole extraction.
func ExtractExisting(table [][]string, column int) (Set, error) {
	if column < 0 {
		return nil, errors.NewValidationError("column", column, "must not be negative")
	}

	existing := make(Set)
	if len(table) <= 1 {
		return existing, nil
	}

	for i, row := range table[1:] {
		if len(row) <= column {
			// +2: one for the header, one for 1-based numbering
			return nil, errors.NewValidationError(
				fmt.Sprintf("row %d", i+2),
				row,
				fmt.Sprintf("expected at least %d fields, got %d", column+1, len(row)),
			)
		}
		existing.Add(row[column])
	}
	return existing, nil
}

// Duplicate is a candidate keyword that occurred more than once.
type Duplicate struct {
	Keyword string
	Count   int
}

// DuplicateReport tallies how often each canonical candidate keyword occurred.
type DuplicateReport struct {
	Counts map[string]int
	order  []string
}

// Duplicates returns the keywords seen more than once, in first-seen order.
func (r DuplicateReport) Duplicates() []Duplicate {
	var out []Duplicate
	for _, kw := range r.order {
		if n := r.Counts[kw]; n > 1 {
			out = append(out, Duplicate{Keyword: kw, Count: n})
		}
	}
	return out
}

func (r *DuplicateReport) add(keyword string) {
	if r.Counts == nil {
		r.Counts = make(map[string]int)
	}
	if _, seen := r.Counts[keyword]; !seen {
		r.order = append(r.order, keyword)
	}
	r.Counts[keyword]++
}

// newlines are removed before splitting: a line break inside the blob
// continues the current token.
var newlines = strings.NewReplacer("\r", "", "\n", "")

// ExtractCandidates splits raw on commas and returns the set of canonical
// keywords along with the occurrence tally. Empty tokens are ignored.
func ExtractCandidates(raw string) (Set, DuplicateReport) {
	var report DuplicateReport
	candidates := make(Set)

	for _, token := range strings.Split(newlines.Replace(raw), ",") {
		kw := Canonicalize(token)
		if kw == "" {
			continue
		}
		report.add(kw)
		candidates[kw] = struct{}{}
	}
	return candidates, report
}
