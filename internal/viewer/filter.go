package viewer

import "strings"

// FilterParam is the query parameter carrying the nav search text.
const FilterParam = "q"

// ApplyFilter hides every item whose label does not contain query,
// ignoring case, and shows the rest. The empty query shows everything.
func ApplyFilter(query string, items []NavItem) {
	query = strings.ToLower(query)
	for i := range items {
		items[i].Hidden = !strings.Contains(strings.ToLower(items[i].Label), query)
	}
}

