package similarity

import (
	"unicode/utf8"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffScorer scores strings by diffing them and measuring how much survived
// unchanged: 2*M/T, where M is the total rune count of the equal diff
// segments and T the combined rune length of both strings.
//
// This mirrors the classic sequence-matcher ratio used by interactive
// "did you mean" prompts, and is the scorer the default 0.6 lookup
// threshold was tuned against.
type DiffScorer struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewDiffScorer creates a DiffScorer.
func NewDiffScorer() *DiffScorer {
	dmp := diffmatchpatch.New()
	// Identifiers are short; always compute the exact diff.
	dmp.DiffTimeout = 0
	return &DiffScorer{dmp: dmp}
}

// Ratio implements Scorer.
func (s *DiffScorer) Ratio(a, b string) float64 {
	total := utf8.RuneCountInString(a) + utf8.RuneCountInString(b)
	if total == 0 {
		return 1.0
	}

	matched := 0
	for _, d := range s.dmp.DiffMain(a, b, false) {
		if d.Type == diffmatchpatch.DiffEqual {
			matched += utf8.RuneCountInString(d.Text)
		}
	}

	return 2.0 * float64(matched) / float64(total)
}
