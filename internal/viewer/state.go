// Package viewer resolves, loads and renders documentation pages for the
// docs viewer. The current document lives in the location's query string;
// every navigation derives it again and runs a fresh load.
package viewer

import (
	"net/url"
	"strings"

	"github.com/ziadkadry99/docviewer/internal/catalog"
)

// DocParam is the query parameter selecting the active document.
const DocParam = "doc"

// State is a step of a viewer cycle.
type State int

const (
	Idle State = iota
	Resolving
	Loading
	Rendered
	Errored
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Resolving:
		return "resolving"
	case Loading:
		return "loading"
	case Rendered:
		return "rendered"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// MarshalText lets State appear as its name in JSON.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// ViewerState is everything the viewer derives from the location.
type ViewerState struct {
	ActiveFilename string `json:"active_filename"`
}

// ResolveActiveFilename reads the doc parameter from locationSearch (with or
// without the leading "?"). A present, non-empty value is returned verbatim,
// even when the catalog does not know it. Otherwise the first catalog entry
// is the default.
func ResolveActiveFilename(locationSearch string, c catalog.Catalog) string {
	// ParseQuery keeps the well-formed pairs when it reports an error.
	values, _ := url.ParseQuery(strings.TrimPrefix(locationSearch, "?"))
	if doc := values.Get(DocParam); doc != "" {
		return doc
	}
	return c.First()
}

// ResolveState wraps ResolveActiveFilename.
func ResolveState(locationSearch string, c catalog.Catalog) ViewerState {
	return ViewerState{ActiveFilename: ResolveActiveFilename(locationSearch, c)}
}
