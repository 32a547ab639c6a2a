package viewer

import (
	"fmt"
	"html/template"
	"net/url"
	"strings"

	"github.com/ziadkadry99/docviewer/internal/catalog"
)

// NavItem is one entry of the navigation list.
type NavItem struct {
	Label    string `json:"label"`
	Filename string `json:"filename"`
	Href     string `json:"href"`
	Active   bool   `json:"active"`
	Hidden   bool   `json:"hidden"`
}

// NavHref is the same-page link that selects filename.
func NavHref(filename string) string {
	return "?" + DocParam + "=" + url.QueryEscape(filename)
}

// RenderNav builds the navigation list in catalog order. At most one item is
// active; none is when active is not a catalog filename.
func RenderNav(c catalog.Catalog, active string) []NavItem {
	items := make([]NavItem, len(c))
	for i, e := range c {
		items[i] = NavItem{
			Label:    e.DisplayName,
			Filename: e.Filename,
			Href:     NavHref(e.Filename),
			Active:   e.Filename == active,
		}
	}
	return items
}

// NavHTML renders items as the markup of the navigation region. The output
// depends only on items, so re-rendering the same list is idempotent.
func NavHTML(items []NavItem) template.HTML {
	var b strings.Builder
	for _, item := range items {
		class := "doc-nav-item"
		if item.Active {
			class += " active"
		}
		style := ""
		if item.Hidden {
			style = ` style="display: none"`
		}
		fmt.Fprintf(&b, `<a href="%s" class="%s"%s>%s</a>`+"\n",
			template.HTMLEscapeString(item.Href), class, style, template.HTMLEscapeString(item.Label))
	}
	return template.HTML(b.String())
}
