package find

import (
	"fmt"
)

// One returns the single item in items satisfying cond.
//
// A nil slice is valid and behaves as an empty collection. Zero matches fail
// with ErrNotFound, two or more with ErrAmbiguous. Items are scanned in
// slice order.
func One[T any](items []T, cond func(T) bool) (T, error) {
	var (
		found T
		n     int
	)
	for _, item := range items {
		if cond(item) {
			if n == 0 {
				found = item
			}
			n++
		}
	}

	var zero T
	switch {
	case n == 0:
		return zero, ErrNotFound
	case n >= 2:
		return zero, ErrAmbiguous
	}
	return found, nil
}

// SimilarOne returns the item whose key is most similar to target.
//
// Every item's key is scored against target with the configured scorer;
// the best-scoring item wins, first-seen on ties. A score of 1.0 returns
// the item. A score above the threshold but below 1.0 fails with a
// *SuggestionError carrying the best candidate's key. Anything at or below
// the threshold fails with ErrNotFound, as does an empty collection.
//
// key must be non-nil; use SimilarString for plain string slices.
func SimilarOne[T any](target string, items []T, key func(T) string, opts ...Option) (T, error) {
	cfg := newConfig(opts)

	var (
		best  T
		score float64
		zero  T
	)
	if len(items) == 0 {
		return zero, ErrNotFound
	}

	for _, item := range items {
		ratio := cfg.scorer.Ratio(key(item), target)
		checkRatio(ratio)
		if ratio > score {
			score = ratio
			best = item
		}
	}

	switch {
	case score == 1.0:
		return best, nil
	case score > cfg.threshold:
		return zero, &SuggestionError{Key: key(best)}
	}
	return zero, ErrNotFound
}

// SimilarString is SimilarOne over plain strings, with each string acting
// as its own key.
func SimilarString(target string, items []string, opts ...Option) (string, error) {
	return SimilarOne(target, items, func(s string) string { return s }, opts...)
}

// SimilarOneByKeys returns the item whose named fields are, on average, most
// similar to the target fields.
//
// target maps field names to the strings the caller is searching for. keys
// extracts the corresponding field values from each item; a field missing
// from an item's map scores 0.0 for that field rather than being skipped.
// An item's overall score is the arithmetic mean across exactly the
// requested fields. The decision policy matches SimilarOne, except the
// suggestion enumerates every requested field of the best candidate.
//
// An empty collection or an empty target fails with ErrNotFound.
func SimilarOneByKeys[T any](target map[string]string, items []T, keys func(T) map[string]string, opts ...Option) (T, error) {
	cfg := newConfig(opts)

	var (
		best  T
		score float64
		zero  T
	)
	if len(items) == 0 || len(target) == 0 {
		return zero, ErrNotFound
	}

	for _, item := range items {
		fields := keys(item)

		sum := 0.0
		for name, want := range target {
			value, ok := fields[name]
			if !ok {
				continue
			}
			ratio := cfg.scorer.Ratio(value, want)
			checkRatio(ratio)
			sum += ratio
		}

		mean := sum / float64(len(target))
		checkRatio(mean)
		if mean > score {
			score = mean
			best = item
		}
	}

	switch {
	case score == 1.0:
		return best, nil
	case score > cfg.threshold:
		fields := keys(best)
		suggestion := make(map[string]string, len(target))
		for name := range target {
			suggestion[name] = fields[name]
		}
		return zero, &SuggestionError{Fields: suggestion}
	}
	return zero, ErrNotFound
}

// checkRatio aborts on a similarity ratio outside [0, 1]. Reaching it means
// the scorer is broken, not that the caller passed bad input.
func checkRatio(r float64) {
	if r < 0.0 || r > 1.0 {
		panic(fmt.Sprintf("find: similarity ratio %v out of range [0, 1]", r))
	}
}
