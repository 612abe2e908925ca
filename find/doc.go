// Package find provides generic lookup helpers for in-memory collections:
// locating exactly one item matching a predicate, and locating the most
// likely intended item when a caller's identifier does not exactly match
// any item's name.
//
// # Exact Lookup
//
// [One] returns the single item satisfying a predicate:
//
//	n, err := find.One([]int{1, 2, 3, 4}, func(v int) bool { return v == 3 })
//
// Zero matches fail with [ErrNotFound]; two or more fail with [ErrAmbiguous].
// A nil slice is a valid input and behaves as an empty collection.
//
// # Fuzzy Lookup
//
// [SimilarOne] scores every item's key against a target string using a
// similarity ratio in [0, 1] and applies a threshold policy:
//
//   - ratio 1.0: the item is returned
//   - threshold < ratio < 1.0: the lookup fails, but the error is a
//     [*SuggestionError] carrying the best candidate's key so callers can
//     surface a "did you mean?" hint
//   - ratio <= threshold: the lookup fails with a plain [ErrNotFound]
//
// [SimilarString] is the identity-key convenience for plain string slices.
// [SimilarOneByKeys] extends the same policy to targets described by several
// named fields, averaging the per-field ratios.
//
// # Error Handling
//
// All failures unwrap to a sentinel, so callers can branch with errors.Is
// and recover suggestions with errors.As:
//
//	_, err := find.SimilarString("robot_nod", names)
//	var sugg *find.SuggestionError
//	if errors.As(err, &sugg) {
//	    fmt.Printf("did you mean %s?\n", sugg.Key)
//	} else if errors.Is(err, find.ErrNotFound) {
//	    // nothing close enough
//	}
//
// # Thread Safety
//
// All functions are pure: they read only their arguments and keep no state
// between calls, so concurrent use needs no coordination.
package find
