package search_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jonwraymond/itemsearch/catalog"
	"github.com/jonwraymond/itemsearch/search"
)

// TestExample_Basic verifies the basic searcher example works correctly.
// Mirrors: examples/catalog/main.go
func TestExample_Basic(t *testing.T) {
	searcher := search.NewBleveSearcher(search.Config{})
	defer func() {
		if err := searcher.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
	}()

	entries := []catalog.Entry{
		{Name: "talker", Namespace: "/robot/", Description: "Publishes greeting messages", Tags: []string{"demo", "publisher"}},
		{Name: "listener", Namespace: "/robot/", Description: "Subscribes to greeting messages", Tags: []string{"demo", "subscriber"}},
		{Name: "planner", Namespace: "/nav/", Description: "Computes navigation paths", Tags: []string{"navigation"}},
		{Name: "controller", Namespace: "/nav/", Description: "Follows navigation paths", Tags: []string{"navigation"}},
	}

	// Test 1: Search by name
	t.Run("search_name", func(t *testing.T) {
		results, err := searcher.Search("talker", 10, entries)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) == 0 {
			t.Fatal("expected results for 'talker'")
		}
		if results[0].Entry.Name != "talker" {
			t.Errorf("expected talker first, got %s", results[0].Entry.Name)
		}
	})

	// Test 2: Search by namespace
	t.Run("search_namespace", func(t *testing.T) {
		results, err := searcher.Search("robot", 10, entries)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) < 2 {
			t.Fatalf("expected at least 2 robot results, got %d", len(results))
		}
		for _, m := range results[:2] {
			if m.Entry.Namespace != "/robot/" {
				t.Errorf("expected /robot/ namespace, got %s", m.Entry.Namespace)
			}
		}
	})

	// Test 3: Search by description
	t.Run("search_description", func(t *testing.T) {
		results, err := searcher.Search("greeting", 10, entries)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) != 2 {
			t.Errorf("expected 2 greeting results, got %d", len(results))
		}
	})

	// Test 4: No matches
	t.Run("no_matches", func(t *testing.T) {
		results, err := searcher.Search("teleportation", 10, entries)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected 0 results, got %d", len(results))
		}
	})

	// Test 5: Empty query returns first N
	t.Run("empty_query", func(t *testing.T) {
		results, err := searcher.Search("", 2, entries)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) != 2 {
			t.Errorf("expected 2 results, got %d", len(results))
		}
	})
}

// TestExample_CustomConfig verifies custom configuration works correctly.
func TestExample_CustomConfig(t *testing.T) {
	entries := []catalog.Entry{
		{Name: "deploy", Namespace: "/ci/", Description: "Deploy application to production", Tags: []string{"cd"}},
		{Name: "rollout", Namespace: "/ops/", Description: "Gradually deploy a new version", Tags: []string{"deployment"}},
	}

	// Test 1: Name matches rank higher than description matches
	t.Run("name_boost", func(t *testing.T) {
		searcher := search.NewBleveSearcher(search.Config{})
		defer func() {
			if err := searcher.Close(); err != nil {
				t.Fatalf("close failed: %v", err)
			}
		}()

		results, err := searcher.Search("deploy", 10, entries)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) == 0 {
			t.Fatal("expected results")
		}
		if results[0].Entry.Name != "deploy" {
			t.Errorf("expected deploy first (name match), got %s", results[0].Entry.Name)
		}
	})

	// Test 2: MaxEntries limits indexed entries
	t.Run("max_entries_limit", func(t *testing.T) {
		searcher := search.NewBleveSearcher(search.Config{MaxEntries: 2})
		defer func() {
			if err := searcher.Close(); err != nil {
				t.Fatalf("close failed: %v", err)
			}
		}()

		many := make([]catalog.Entry, 4)
		for i := range many {
			many[i] = catalog.Entry{
				Name:        fmt.Sprintf("worker%d", i),
				Description: strings.Repeat("keyword ", 20),
			}
		}

		results, err := searcher.Search("keyword", 10, many)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) > 2 {
			t.Errorf("expected at most 2 results (MaxEntries), got %d", len(results))
		}
	})

	// Test 3: MaxDescLen truncates long descriptions
	t.Run("max_desc_len", func(t *testing.T) {
		searcher := search.NewBleveSearcher(search.Config{MaxDescLen: 50})
		defer func() {
			if err := searcher.Close(); err != nil {
				t.Fatalf("close failed: %v", err)
			}
		}()

		// "uniqueword" is past the truncation point.
		long := []catalog.Entry{
			{Name: "longdoc", Description: strings.Repeat("padding ", 100) + "uniqueword"},
		}

		results, err := searcher.Search("uniqueword", 10, long)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) != 0 {
			t.Errorf("expected 0 results (word truncated), got %d", len(results))
		}
	})
}

// TestExample_CatalogIntegration verifies full catalog integration works.
func TestExample_CatalogIntegration(t *testing.T) {
	searcher := search.NewBleveSearcher(search.Config{})
	defer func() {
		if err := searcher.Close(); err != nil {
			t.Fatalf("close failed: %v", err)
		}
	}()

	cat := catalog.New(catalog.Options{Searcher: searcher})
	err := cat.RegisterAll([]catalog.Entry{
		{Name: "talker", Namespace: "/robot/", Description: "Publishes greeting messages", Tags: []string{"demo"}},
		{Name: "listener", Namespace: "/robot/", Description: "Subscribes to greeting messages", Tags: []string{"demo"}},
		{Name: "planner", Namespace: "/nav/", Description: "Computes navigation paths", Tags: []string{"navigation"}},
	})
	if err != nil {
		t.Fatalf("RegisterAll error: %v", err)
	}

	t.Run("search_tag", func(t *testing.T) {
		results, err := cat.Search("demo", 10)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		if len(results) != 2 {
			t.Errorf("expected 2 demo results, got %d", len(results))
		}
	})

	t.Run("filter_results", func(t *testing.T) {
		results, err := cat.Search("navigation", 10)
		if err != nil {
			t.Fatalf("Search error: %v", err)
		}
		nav := results.FilterByNamespace("/nav/")
		if len(nav) != len(results) {
			t.Errorf("all navigation results should be in /nav/: %v", results.IDs())
		}
	})
}
