// Package keywords reconciles a candidate keyword list against the keywords
// already present in an ad group.
//
// Keywords are compared by canonical form (surrounding whitespace trimmed,
// lower-cased). The existing set comes from one column of an exported table,
// the candidate set from a comma separated blob. The result is the sorted,
// de-duplicated list of candidates not yet present.
package keywords

import (
	"slices"
	"sort"
	"strings"
)

// Canonicalize trims surrounding whitespace and lower-cases keyword.
// It performs no other normalization.
func Canonicalize(keyword string) string {
	return strings.ToLower(strings.TrimSpace(keyword))
}

// Set is a set of canonical keywords.
type Set map[string]struct{}

// NewSet returns a set holding the canonical form of every keyword.
func NewSet(keywords ...string) Set {
	s := make(Set, len(keywords))
	for _, kw := range keywords {
		s.Add(kw)
	}
	return s
}

// Add inserts the canonical form of keyword.
func (s Set) Add(keyword string) {
	s[Canonicalize(keyword)] = struct{}{}
}

// Has reports whether the canonical form of keyword is in the set.
func (s Set) Has(keyword string) bool {
	_, ok := s[Canonicalize(keyword)]
	return ok
}

// Len returns the number of keywords in the set.
func (s Set) Len() int {
	return len(s)
}

// Sorted returns the keywords in ascending lexicographic order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for kw := range s {
		out = append(out, kw)
	}
	sort.Strings(out)
	return out
}

// Missing returns the keywords of candidates that are absent from existing,
// sorted ascending.
func Missing(existing, candidates Set) []string {
	out := make([]string, 0, len(candidates))
	for kw := range candidates {
		if _, ok := existing[kw]; !ok {
			out = append(out, kw)
		}
	}
	sort.Strings(out)
	return out
}

// Unique returns keywords sorted ascending with exact duplicates removed.
// Keywords are not canonicalized.
func Unique(keywords []string) []string {
	out := slices.Clone(keywords)
	slices.Sort(out)
	return slices.Compact(out)
}
