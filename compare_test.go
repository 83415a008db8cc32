package frond

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareSuggestions_HigherRelevanceFirst(t *testing.T) {
	t.Parallel()

	hi := &Suggestion{Completion: "zebra", Relevance: RelevanceDefault}
	lo := &Suggestion{Completion: "apple", Relevance: RelevanceLow}

	assert.Negative(t, CompareSuggestions(hi, lo))
	assert.Positive(t, CompareSuggestions(lo, hi))
}

func TestCompareSuggestions_TiesBreakAlphabetically(t *testing.T) {
	t.Parallel()

	a := &Suggestion{Completion: "apple", Relevance: RelevanceDefault}
	b := &Suggestion{Completion: "banana", Relevance: RelevanceDefault}

	assert.Negative(t, CompareSuggestions(a, b))
	assert.Positive(t, CompareSuggestions(b, a))
	assert.Zero(t, CompareSuggestions(a, a))
}

func TestSortSuggestions_OrdersByRelevanceThenName(t *testing.T) {
	t.Parallel()

	suggestions := []*Suggestion{
		{Completion: "delta", Relevance: RelevanceLow},
		{Completion: "bravo", Relevance: RelevanceDefault},
		{Completion: "alpha", Relevance: RelevanceDefault},
		{Completion: "charlie", Relevance: RelevanceHigh},
	}
	SortSuggestions(suggestions)

	var got []string
	for _, s := range suggestions {
		got = append(got, s.Completion)
	}
	assert.Equal(t, []string{"charlie", "alpha", "bravo", "delta"}, got)
}

// Transitivity spot-check: sorting any rotation of the same input yields
// the same order.
func TestSortSuggestions_StrictWeakOrdering(t *testing.T) {
	t.Parallel()

	base := []*Suggestion{
		{Completion: "a", Relevance: 1000},
		{Completion: "b", Relevance: 1000},
		{Completion: "c", Relevance: 500},
		{Completion: "a", Relevance: 2000},
	}

	var want []string
	for rot := range base {
		rotated := append(append([]*Suggestion{}, base[rot:]...), base[:rot]...)
		SortSuggestions(rotated)

		var got []string
		for _, s := range rotated {
			got = append(got, s.Completion)
		}
		if want == nil {
			want = got
			continue
		}
		require.Equal(t, want, got, "rotation %d", rot)
	}
}
