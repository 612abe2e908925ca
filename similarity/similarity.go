package similarity

// Scorer computes a normalized similarity ratio between two strings.
type Scorer interface {
	// Ratio returns a score in [0, 1]: 1.0 for identical strings,
	// 0.0 for strings with no common structure.
	Ratio(a, b string) float64
}

var defaultScorer Scorer = NewDiffScorer()

// Default returns the package's default scorer, shared across callers.
func Default() Scorer {
	return defaultScorer
}
