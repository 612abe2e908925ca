// Package similarity provides normalized string-similarity scorers for the
// find package.
//
// It exists to:
//   - Keep find small and dependency-light
//   - Allow swapping the similarity algorithm without touching lookup logic
//
// # Scorers
//
// Two implementations of [Scorer] are provided:
//
//   - [DiffScorer]: a diff-based matching ratio (2*M/T, where M is the number
//     of matching runes in a minimal diff and T the combined length). This is
//     the default; the find package's 0.6 threshold is calibrated to it.
//   - [LevenshteinScorer]: a normalized edit-distance similarity.
//
// # Usage
//
//	scorer := similarity.Default()
//	ratio := scorer.Ratio("robot_nod", "robot_node") // ~0.947
//
// # Contract
//
// Every Ratio result lies in [0, 1]: 1.0 means the strings are identical,
// 0.0 means they share no common structure. Two empty strings are identical
// and score 1.0. Callers treat an out-of-range ratio as a programming error.
//
// # Thread Safety
//
// All scorers are stateless after construction and safe for concurrent use.
package similarity
