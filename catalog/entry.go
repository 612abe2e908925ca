package catalog

// Entry is a single named item in the catalog.
type Entry struct {
	// Name is the entry's local name. Required.
	Name string

	// Namespace groups related entries. It carries a trailing slash;
	// empty means the root namespace "/".
	Namespace string

	// Description is free text used by Search.
	Description string

	// Tags are labels used by Search and result filtering.
	Tags []string
}

// ID returns the entry's canonical slash-qualified identifier.
func (e Entry) ID() string {
	return e.namespace() + e.Name
}

func (e Entry) namespace() string {
	if e.Namespace == "" {
		return "/"
	}
	return e.Namespace
}

// keyFields exposes the entry's identifying fields for multi-key fuzzy lookup.
func (e Entry) keyFields() map[string]string {
	return map[string]string{
		"namespace": e.namespace(),
		"name":      e.Name,
	}
}
