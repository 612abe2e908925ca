package search

import (
	"sync"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/jonwraymond/itemsearch/catalog"
)

// Default field boosts.
const (
	DefaultNameBoost      = 3.0
	DefaultNamespaceBoost = 2.0
	DefaultTagsBoost      = 2.0
)

// Config configures a BleveSearcher.
type Config struct {
	// NameBoost weights matches on the entry name. Default: 3.
	NameBoost float64

	// NamespaceBoost weights matches on the namespace. Default: 2.
	NamespaceBoost float64

	// TagsBoost weights matches on tags. Default: 2.
	TagsBoost float64

	// MaxEntries limits how many entries are indexed (0 = unlimited).
	MaxEntries int

	// MaxDescLen truncates descriptions before indexing (0 = unlimited).
	MaxDescLen int
}

func (c Config) withDefaults() Config {
	if c.NameBoost == 0 {
		c.NameBoost = DefaultNameBoost
	}
	if c.NamespaceBoost == 0 {
		c.NamespaceBoost = DefaultNamespaceBoost
	}
	if c.TagsBoost == 0 {
		c.TagsBoost = DefaultTagsBoost
	}
	return c
}

// entryDoc is the shape indexed into Bleve.
type entryDoc struct {
	Name        string   `json:"name"`
	Namespace   string   `json:"namespace"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// BleveSearcher ranks catalog entries with BM25 over an in-memory Bleve
// index. It implements catalog.Searcher.
type BleveSearcher struct {
	cfg Config

	mu          sync.RWMutex
	idx         bleve.Index
	byID        map[string]catalog.Entry
	fingerprint string
}

// NewBleveSearcher creates a BleveSearcher with the given config.
// Zero-value boosts fall back to the package defaults.
func NewBleveSearcher(cfg Config) *BleveSearcher {
	return &BleveSearcher{cfg: cfg.withDefaults()}
}

// Search implements catalog.Searcher.
func (s *BleveSearcher) Search(q string, limit int, entries []catalog.Entry) (catalog.Results, error) {
	if limit <= 0 {
		return nil, nil
	}

	if s.cfg.MaxEntries > 0 && len(entries) > s.cfg.MaxEntries {
		entries = entries[:s.cfg.MaxEntries]
	}

	if q == "" {
		n := min(limit, len(entries))
		results := make(catalog.Results, n)
		for i, e := range entries[:n] {
			results[i] = catalog.Match{Entry: e}
		}
		return results, nil
	}

	idx, byID, err := s.ensureIndex(entries)
	if err != nil {
		return nil, err
	}

	req := bleve.NewSearchRequestOptions(s.buildQuery(q), limit, 0, false)
	// Deterministic order: score DESC, then ID ASC.
	req.SortBy([]string{"-_score", "_id"})

	res, err := idx.Search(req)
	if err != nil {
		return nil, err
	}

	results := make(catalog.Results, 0, len(res.Hits))
	for _, hit := range res.Hits {
		e, ok := byID[hit.ID]
		if !ok {
			continue
		}
		results = append(results, catalog.Match{Entry: e, Score: hit.Score})
	}
	return results, nil
}

// Close releases the cached index. The searcher remains usable; the next
// Search rebuilds it.
func (s *BleveSearcher) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.idx == nil {
		return nil
	}
	err := s.idx.Close()
	s.idx = nil
	s.byID = nil
	s.fingerprint = ""
	return err
}

func (s *BleveSearcher) buildQuery(q string) query.Query {
	name := bleve.NewMatchQuery(q)
	name.SetField("name")
	name.SetBoost(s.cfg.NameBoost)

	namespace := bleve.NewMatchQuery(q)
	namespace.SetField("namespace")
	namespace.SetBoost(s.cfg.NamespaceBoost)

	tags := bleve.NewMatchQuery(q)
	tags.SetField("tags")
	tags.SetBoost(s.cfg.TagsBoost)

	desc := bleve.NewMatchQuery(q)
	desc.SetField("description")

	return bleve.NewDisjunctionQuery(name, namespace, tags, desc)
}

// ensureIndex returns a Bleve index over entries, rebuilding only when the
// entry set's fingerprint changes.
func (s *BleveSearcher) ensureIndex(entries []catalog.Entry) (bleve.Index, map[string]catalog.Entry, error) {
	fp := computeFingerprint(entries)

	s.mu.RLock()
	if s.idx != nil && s.fingerprint == fp {
		idx, byID := s.idx, s.byID
		s.mu.RUnlock()
		return idx, byID, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Another goroutine may have rebuilt while we waited for the lock.
	if s.idx != nil && s.fingerprint == fp {
		return s.idx, s.byID, nil
	}

	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, nil, err
	}

	byID := make(map[string]catalog.Entry, len(entries))
	batch := idx.NewBatch()
	for _, e := range entries {
		desc := e.Description
		if s.cfg.MaxDescLen > 0 && len(desc) > s.cfg.MaxDescLen {
			desc = desc[:s.cfg.MaxDescLen]
		}

		id := e.ID()
		byID[id] = e
		if err := batch.Index(id, entryDoc{
			Name:        e.Name,
			Namespace:   e.Namespace,
			Description: desc,
			Tags:        e.Tags,
		}); err != nil {
			_ = idx.Close()
			return nil, nil, err
		}
	}
	if err := idx.Batch(batch); err != nil {
		_ = idx.Close()
		return nil, nil, err
	}

	if s.idx != nil {
		_ = s.idx.Close()
	}
	s.idx = idx
	s.byID = byID
	s.fingerprint = fp
	return idx, byID, nil
}
