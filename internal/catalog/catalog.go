package catalog

import "errors"

// ErrEmptyCatalog is returned when an operation needs at least one entry.
var ErrEmptyCatalog = errors.New("catalog has no entries")

// GenericTitle is the page-title label used for files outside the catalog.
const GenericTitle = "Documentation"

// Entry is one document the viewer can display.
type Entry struct {
	DisplayName string `yaml:"display_name" koanf:"display_name" json:"display_name"`
	Filename    string `yaml:"filename" koanf:"filename" json:"filename"`
	// Title is the friendly label used in the page title. Falls back to DisplayName.
	Title string `yaml:"title,omitempty" koanf:"title" json:"title,omitempty"`
}

// Catalog is the ordered list of documents. Order is navigation order.
type Catalog []Entry

// Default returns the catalog shipped with the viewer.
func Default() Catalog {
	return Catalog{
		{DisplayName: "Quick Start", Filename: "QUICK_START.md", Title: "Quick Start Guide"},
		{DisplayName: "API Reference", Filename: "API.md"},
		{DisplayName: "CLI Guide", Filename: "CLI_GUIDE.md"},
		{DisplayName: "System Architecture", Filename: "SYSTEM_ARCHITECTURE.md"},
		{DisplayName: "Testing Framework", Filename: "TESTING_FRAMEWORK.md"},
		{DisplayName: "Roadmap", Filename: "ROADMAP.md"},
		{DisplayName: "Contributing", Filename: "CONTRIBUTING.md"},
		{DisplayName: "Security", Filename: "SECURITY.md"},
	}
}

// First returns the filename of the first entry, or "" for an empty catalog.
func (c Catalog) First() string {
	if len(c) == 0 {
		return ""
	}
	return c[0].Filename
}

// Lookup finds the entry with the given filename.
func (c Catalog) Lookup(filename string) (Entry, bool) {
	for _, e := range c {
		if e.Filename == filename {
			return e, true
		}
	}
	return Entry{}, false
}

// Contains reports whether filename is in the catalog.
func (c Catalog) Contains(filename string) bool {
	_, ok := c.Lookup(filename)
	return ok
}

// FriendlyTitle returns the page-title label for filename, or GenericTitle
// when the file is not in the catalog.
func (c Catalog) FriendlyTitle(filename string) string {
	e, ok := c.Lookup(filename)
	if !ok {
		return GenericTitle
	}
	if e.Title != "" {
		return e.Title
	}
	if e.DisplayName != "" {
		return e.DisplayName
	}
	return GenericTitle
}

// Filenames returns every filename in catalog order.
func (c Catalog) Filenames() []string {
	out := make([]string, len(c))
	for i, e := range c {
		out[i] = e.Filename
	}
	return out
}
