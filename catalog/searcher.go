package catalog

import (
	"sort"
	"strings"
)

// Searcher ranks entries against a free-text query.
//
// Implementations must treat entries as read-only and may be called
// concurrently. An empty query returns the first limit entries.
type Searcher interface {
	Search(query string, limit int, entries []Entry) (Results, error)
}

// Match is a single search result.
type Match struct {
	// Entry is the matched catalog entry.
	Entry Entry

	// Score is the relevance score. Its scale depends on the searcher;
	// higher is always better.
	Score float64
}

// Results is a slice of Match with helper methods.
type Results []Match

// IDs returns just the qualified IDs from the results.
func (r Results) IDs() []string {
	ids := make([]string, len(r))
	for i, m := range r {
		ids[i] = m.Entry.ID()
	}
	return ids
}

// Entries returns just the entries from the results.
func (r Results) Entries() []Entry {
	entries := make([]Entry, len(r))
	for i, m := range r {
		entries[i] = m.Entry
	}
	return entries
}

// FilterByNamespace returns results matching the given namespace.
func (r Results) FilterByNamespace(namespace string) Results {
	var filtered Results
	for _, m := range r {
		if m.Entry.namespace() == namespace {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// FilterByMinScore returns results with score >= minScore.
func (r Results) FilterByMinScore(minScore float64) Results {
	var filtered Results
	for _, m := range r {
		if m.Score >= minScore {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// substringSearcher is the fallback Searcher: case-insensitive substring
// matching with a fixed score per matched field.
type substringSearcher struct{}

func (substringSearcher) Search(query string, limit int, entries []Entry) (Results, error) {
	if limit <= 0 {
		return nil, nil
	}

	if query == "" {
		n := min(limit, len(entries))
		results := make(Results, n)
		for i, e := range entries[:n] {
			results[i] = Match{Entry: e}
		}
		return results, nil
	}

	q := strings.ToLower(query)
	var results Results
	for _, e := range entries {
		if score := substringScore(e, q); score > 0 {
			results = append(results, Match{Entry: e, Score: score})
		}
	}

	// Deterministic order: score DESC, then ID ASC.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Entry.ID() < results[j].Entry.ID()
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

func substringScore(e Entry, q string) float64 {
	if strings.Contains(strings.ToLower(e.Name), q) {
		return 1.0
	}
	if strings.Contains(strings.ToLower(e.namespace()), q) {
		return 0.5
	}
	for _, tag := range e.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return 0.5
		}
	}
	if strings.Contains(strings.ToLower(e.Description), q) {
		return 0.25
	}
	return 0
}
