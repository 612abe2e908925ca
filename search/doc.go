// Package search provides a BM25-based Searcher implementation for the
// catalog package.
//
// It exists to:
//   - Keep catalog small and dependency-light
//   - Enable stronger ranking strategies without forcing heavier search
//     dependencies on every consumer
//
// # Usage
//
// The primary type is [BleveSearcher], which implements [catalog.Searcher]:
//
//	cat := catalog.New(catalog.Options{
//	    Searcher: search.NewBleveSearcher(search.Config{}),
//	})
//
// # Configuration
//
// [Config] allows customization of field boosts and safety limits:
//
//	cfg := search.Config{
//	    NameBoost:      3,    // Boost name matches (default: 3)
//	    NamespaceBoost: 2,    // Boost namespace matches (default: 2)
//	    TagsBoost:      2,    // Boost tag matches (default: 2)
//	    MaxEntries:     1000, // Limit entries to index (0 = unlimited)
//	    MaxDescLen:     5000, // Truncate long descriptions (0 = unlimited)
//	}
//
// # Thread Safety
//
// BleveSearcher is safe for concurrent use. It uses an internal RWMutex to
// protect index state and caches the in-memory Bleve index based on entry
// fingerprints, only rebuilding when the entry set changes.
//
// # Behavior
//
// Empty queries return the first N entries (matching catalog's fallback
// behavior). Non-empty queries use BM25 ranking with deterministic
// tie-breaking (score DESC, then ID ASC).
package search
