package find

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error values for consistent error handling by callers.
var (
	// ErrNotFound signals that no item matched, or that the closest fuzzy
	// candidate was not similar enough to be worth suggesting.
	ErrNotFound = errors.New("item not found")

	// ErrAmbiguous signals that more than one item matched an exact-match
	// condition.
	ErrAmbiguous = errors.New("multiple items found")
)

// SuggestionError reports a fuzzy lookup that found a plausible but not
// certain candidate. It unwraps to ErrNotFound: the lookup still failed,
// the error just carries enough context for a "did you mean?" hint.
//
// Exactly one of Key or Fields is set: Key for single-key lookups, Fields
// for multi-key lookups (field name to the best candidate's value).
type SuggestionError struct {
	Key    string
	Fields map[string]string
}

func (e *SuggestionError) Error() string {
	if e.Fields == nil {
		return fmt.Sprintf("arguments may be wrong. Isn't it '%s'?", e.Key)
	}

	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("arguments may be wrong. Aren't they below?\n")
	for _, name := range names {
		fmt.Fprintf(&b, "%s='%s'\n", name, e.Fields[name])
	}
	return b.String()
}

func (e *SuggestionError) Unwrap() error { return ErrNotFound }
