package find

import (
	"github.com/jonwraymond/itemsearch/similarity"
)

// DefaultThreshold is the similarity ratio below which a fuzzy candidate is
// considered unrelated rather than a plausible typo. Calibrated against the
// default diff-based scorer.
const DefaultThreshold = 0.6

type config struct {
	threshold float64
	scorer    similarity.Scorer
}

// Option customizes a fuzzy lookup call.
type Option func(*config)

// WithThreshold overrides the similarity threshold. A candidate scoring
// exactly the threshold is rejected: the comparison is strictly greater-than.
func WithThreshold(th float64) Option {
	return func(c *config) { c.threshold = th }
}

// WithScorer overrides the similarity scorer. If the replacement algorithm
// has a different score distribution, re-tune the threshold alongside it.
func WithScorer(s similarity.Scorer) Option {
	return func(c *config) { c.scorer = s }
}

func newConfig(opts []Option) config {
	c := config{
		threshold: DefaultThreshold,
		scorer:    similarity.Default(),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
