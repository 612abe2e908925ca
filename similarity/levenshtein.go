package similarity

import (
	"github.com/agext/levenshtein"
)

// LevenshteinScorer scores strings by normalized edit distance:
// 1 - distance/maxLen. Its score distribution is slightly harsher than
// DiffScorer's for transposed or reordered substrings, so callers switching
// to it may want to re-tune their lookup threshold.
type LevenshteinScorer struct {
	params *levenshtein.Params
}

// NewLevenshteinScorer creates a LevenshteinScorer with default edit costs.
func NewLevenshteinScorer() *LevenshteinScorer {
	return &LevenshteinScorer{params: levenshtein.NewParams()}
}

// Ratio implements Scorer.
func (s *LevenshteinScorer) Ratio(a, b string) float64 {
	return levenshtein.Similarity(a, b, s.params)
}
