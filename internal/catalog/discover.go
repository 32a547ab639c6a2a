package catalog

import (
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns are the globs used when discovery is enabled without patterns.
var DefaultPatterns = []string{"*.md"}

// Discover builds a catalog from the markdown files in fsys that match any of
// the given doublestar patterns and none of excludes. Files under
// DefaultExcludes directories are skipped. Display names come from each
// file's first H1 heading, falling back to a cleaned-up filename. Entries are
// sorted by filename so discovery is stable across runs.
func Discover(fsys fs.FS, patterns, excludes []string) (Catalog, error) {
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	seen := make(map[string]bool)
	var names []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("matching %q: %w", pattern, err)
		}
		for _, m := range matches {
			if inExcludedDir(m) || MatchesExclude(m, excludes) {
				continue
			}
			if !seen[m] {
				seen[m] = true
				names = append(names, m)
			}
		}
	}
	sort.Strings(names)

	c := make(Catalog, 0, len(names))
	for _, name := range names {
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", name, err)
		}
		c = append(c, Entry{
			DisplayName: ExtractTitle(string(content), name),
			Filename:    name,
		})
	}
	if len(c) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// ExtractTitle pulls the first # heading from markdown content, or falls back
// to a display name derived from the filename.
func ExtractTitle(content, relPath string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "# "))
		}
	}
	return formatName(strings.TrimSuffix(path.Base(relPath), ".md"))
}

// formatName turns QUICK_START or quick-start into "Quick Start".
func formatName(name string) string {
	words := strings.FieldsFunc(name, func(c rune) bool {
		return c == '-' || c == '_'
	})
	for i, w := range words {
		w = strings.ToLower(w)
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
