// Package catalog provides an in-memory registry of named entries with
// exact, fuzzy, and full-text lookup.
//
// It is the typical consumer of the find package: callers register entries
// once, then locate them by exact ID, by approximate name (with "did you
// mean?" suggestions for typos), or by free-text search.
//
// # Usage
//
// Create a catalog and register entries:
//
//	cat := catalog.New(catalog.Options{})
//	err := cat.Register(catalog.Entry{
//	    Name:        "talker",
//	    Namespace:   "/robot/",
//	    Description: "Publishes greeting messages",
//	    Tags:        []string{"demo", "publisher"},
//	})
//
// Look entries up:
//
//	e, err := cat.Get("/robot/talker")        // exact ID
//	e, err = cat.Resolve("talkr")             // fuzzy name, suggests "talker"
//	e, err = cat.ResolveQualified("/robot/talkr") // fuzzy namespace + name
//
// Failed resolutions surface the find package's error kinds, so callers can
// branch with errors.Is/errors.As and print suggestion hints.
//
// # Pluggable Search
//
// The catalog accepts a custom Searcher for advanced search capabilities:
//
//	cat := catalog.New(catalog.Options{
//	    Searcher: search.NewBleveSearcher(search.Config{}),
//	})
//	results, err := cat.Search("greeting", 10)
//
// Without one, Search falls back to case-insensitive substring matching.
//
// # Thread Safety
//
// All Catalog methods are safe for concurrent use.
package catalog
