package similarity_test

import (
	"testing"

	"github.com/jonwraymond/itemsearch/similarity"
)

func BenchmarkDiffScorer(b *testing.B) {
	s := similarity.NewDiffScorer()
	for i := 0; i < b.N; i++ {
		_ = s.Ratio("lifecycle_manager_navigation", "lifecycle_manager_localization")
	}
}

func BenchmarkLevenshteinScorer(b *testing.B) {
	s := similarity.NewLevenshteinScorer()
	for i := 0; i < b.N; i++ {
		_ = s.Ratio("lifecycle_manager_navigation", "lifecycle_manager_localization")
	}
}
