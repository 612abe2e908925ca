package catalog

import (
	"errors"
	"sort"
	"sync"

	"github.com/jonwraymond/itemsearch/find"
	"github.com/jonwraymond/itemsearch/strutil"
)

// Error values for consistent error handling by callers.
var (
	ErrAlreadyExists = errors.New("entry already exists")
	ErrInvalidEntry  = errors.New("invalid entry")
)

// Options configures a Catalog.
type Options struct {
	// Searcher handles Search queries. If nil, a case-insensitive
	// substring searcher is used.
	Searcher Searcher

	// FindOptions are applied to every fuzzy resolution, e.g. to adjust
	// the similarity threshold or scorer.
	FindOptions []find.Option
}

// Catalog is an in-memory registry of entries keyed by qualified ID.
type Catalog struct {
	mu       sync.RWMutex
	entries  map[string]Entry
	order    []string
	searcher Searcher
	findOpts []find.Option
}

// New creates a Catalog with the given options.
func New(opts Options) *Catalog {
	searcher := opts.Searcher
	if searcher == nil {
		searcher = substringSearcher{}
	}
	return &Catalog{
		entries:  make(map[string]Entry),
		searcher: searcher,
		findOpts: opts.FindOptions,
	}
}

// Register adds an entry. The entry's qualified ID must be unique.
func (c *Catalog) Register(e Entry) error {
	if e.Name == "" {
		return ErrInvalidEntry
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	id := e.ID()
	if _, ok := c.entries[id]; ok {
		return ErrAlreadyExists
	}
	c.entries[id] = e
	c.order = append(c.order, id)
	return nil
}

// RegisterAll adds entries in order, stopping at the first failure.
func (c *Catalog) RegisterAll(entries []Entry) error {
	for _, e := range entries {
		if err := c.Register(e); err != nil {
			return err
		}
	}
	return nil
}

// Get returns the entry with the exact qualified ID.
// Fails with find.ErrNotFound if no entry has that ID.
func (c *Catalog) Get(id string) (Entry, error) {
	return find.One(c.List(), func(e Entry) bool { return e.ID() == id })
}

// Resolve returns the entry with the given local name.
//
// An exact unique name wins. If the name is ambiguous across namespaces,
// Resolve fails with find.ErrAmbiguous (use ResolveQualified instead). If no
// entry has the name, Resolve falls back to fuzzy matching: a close enough
// candidate produces a *find.SuggestionError carrying its name, anything
// else a plain find.ErrNotFound.
func (c *Catalog) Resolve(name string) (Entry, error) {
	entries := c.List()

	e, err := find.One(entries, func(e Entry) bool { return e.Name == name })
	if err == nil || errors.Is(err, find.ErrAmbiguous) {
		return e, err
	}

	return find.SimilarOne(name, entries, func(e Entry) string { return e.Name }, c.findOpts...)
}

// ResolveQualified returns the entry with the given slash-qualified name,
// falling back to fuzzy matching over both namespace and name. The fuzzy
// score is the mean of the two per-field similarities, so a typo in either
// part still produces a usable suggestion.
func (c *Catalog) ResolveQualified(qualified string) (Entry, error) {
	ns, name := strutil.SplitQualified(qualified)
	entries := c.List()

	e, err := find.One(entries, func(e Entry) bool {
		return e.namespace() == ns && e.Name == name
	})
	if err == nil {
		return e, nil
	}

	target := map[string]string{"namespace": ns, "name": name}
	return find.SimilarOneByKeys(target, entries, Entry.keyFields, c.findOpts...)
}

// List returns all entries in registration order.
func (c *Catalog) List() []Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]Entry, len(c.order))
	for i, id := range c.order {
		out[i] = c.entries[id]
	}
	return out
}

// Len returns the number of registered entries.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Namespaces returns all distinct namespaces in sorted order.
func (c *Catalog) Namespaces() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	seen := make(map[string]bool)
	for _, e := range c.entries {
		seen[e.namespace()] = true
	}

	out := make([]string, 0, len(seen))
	for ns := range seen {
		out = append(out, ns)
	}
	sort.Strings(out)
	return out
}

// Search queries the configured searcher over the current entries.
// Results are ordered by relevance score.
func (c *Catalog) Search(query string, limit int) (Results, error) {
	return c.searcher.Search(query, limit, c.List())
}
