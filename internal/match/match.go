// Package match decides whether rendered transaction text contains a set of
// expected terms.
//
// Matching is a case- and whitespace-insensitive substring test over the
// whole text. It does not look at token boundaries, so a short term such as
// "5.00" also matches inside "15.00".
package match

import (
	"strings"
)

// Normalize collapses whitespace runs (including U+00A0) to one space, trims,
// and lower-cases s.
func Normalize(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Match reports whether every term is contained in text after normalization.
// An empty term list always matches.
func Match(text string, terms []string) bool {
	norm := Normalize(text)
	for _, term := range terms {
		if !strings.Contains(norm, Normalize(term)) {
			return false
		}
	}
	return true
}

// Missing returns the terms not contained in text, in input order.
func Missing(text string, terms []string) []string {
	norm := Normalize(text)
	var missing []string
	for _, term := range terms {
		if !strings.Contains(norm, Normalize(term)) {
			missing = append(missing, term)
		}
	}
	return missing
}

// FindRow returns the index of the first row matching all terms.
func FindRow(rows []string, terms []string) (int, bool) {
	for i, row := range rows {
		if Match(row, terms) {
			return i, true
		}
	}
	return -1, false
}
