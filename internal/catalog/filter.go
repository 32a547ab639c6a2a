package catalog

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultExcludes are directory names never searched during discovery.
var DefaultExcludes = []string{
	".git",
	"node_modules",
	"vendor",
	".docviewer",
	"dist",
	"build",
	"target",
	".venv",
	".idea",
	".vscode",
}

// inExcludedDir reports whether any directory of relPath is a default
// exclusion.
func inExcludedDir(relPath string) bool {
	dirs := strings.Split(path.Dir(relPath), "/")
	for _, d := range dirs {
		for _, excl := range DefaultExcludes {
			if strings.EqualFold(d, excl) {
				return true
			}
		}
	}
	return false
}

// MatchesExclude returns true if relPath matches any of the exclude
// patterns, either as a whole path or by its base name.
func MatchesExclude(relPath string, patterns []string) bool {
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, relPath); err == nil && matched {
			return true
		}
		if matched, err := doublestar.Match(pattern, path.Base(relPath)); err == nil && matched {
			return true
		}
	}
	return false
}
