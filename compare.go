package frond

import (
	"sort"
	"strings"
)

// CompareSuggestions is a total order over suggestions: descending by
// relevance, ties broken by ascending lexicographic order of completion
// text. Returns a negative value when a ranks before b, zero when they rank
// equal, positive otherwise.
func CompareSuggestions(a, b *Suggestion) int {
	if a.Relevance != b.Relevance {
		return b.Relevance - a.Relevance
	}
	return strings.Compare(a.Completion, b.Completion)
}

// SortSuggestions orders suggestions in place by CompareSuggestions.
func SortSuggestions(suggestions []*Suggestion) {
	sort.SliceStable(suggestions, func(i, j int) bool {
		return CompareSuggestions(suggestions[i], suggestions[j]) < 0
	})
}
