package config

import "github.com/ziadkadry99/docviewer/internal/markdown"

// DefaultPath is where init writes the config and where commands look for it.
const DefaultPath = ".docviewer.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		SiteName:   "Apex SDK",
		DocsDir:    ".",
		ViewerPath: "/viewer/",
		Loader: LoaderConfig{
			Mode: LoaderFS,
		},
		Markdown: MarkdownConfig{
			Enabled:   true,
			Highlight: true,
			Style:     markdown.DefaultStyle,
		},
		Server: ServerConfig{
			Port: 8080,
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    ".docviewer/history.db",
		},
	}
}
