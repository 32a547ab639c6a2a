package config

import "github.com/ziadkadry99/docviewer/internal/catalog"

// LoaderMode selects how documents are fetched.
type LoaderMode string

const (
	// LoaderFS reads documents straight from DocsDir.
	LoaderFS LoaderMode = "fs"
	// LoaderHTTP fetches "../<doc>" relative to Loader.ViewerURL.
	LoaderHTTP LoaderMode = "http"
)

// Config is the top-level docviewer configuration, corresponding to .docviewer.yml.
type Config struct {
	SiteName   string `yaml:"site_name" koanf:"site_name"`
	DocsDir    string `yaml:"docs_dir" koanf:"docs_dir"`
	ViewerPath string `yaml:"viewer_path" koanf:"viewer_path"`
	// Catalog lists the documents in navigation order. When empty the
	// catalog is discovered from DocsDir if Discover is set, otherwise the
	// built-in catalog is used.
	Catalog           catalog.Catalog `yaml:"catalog,omitempty" koanf:"catalog"`
	Discover          []string        `yaml:"discover,omitempty" koanf:"discover"`
	DiscoverExclude   []string        `yaml:"discover_exclude,omitempty" koanf:"discover_exclude"`
	RestrictToCatalog bool            `yaml:"restrict_to_catalog" koanf:"restrict_to_catalog"`
	Loader            LoaderConfig    `yaml:"loader" koanf:"loader"`
	Markdown          MarkdownConfig  `yaml:"markdown" koanf:"markdown"`
	Server            ServerConfig    `yaml:"server" koanf:"server"`
	History           HistoryConfig   `yaml:"history" koanf:"history"`
}

// LoaderConfig holds document fetching settings.
type LoaderConfig struct {
	Mode      LoaderMode `yaml:"mode" koanf:"mode"`
	ViewerURL string     `yaml:"viewer_url,omitempty" koanf:"viewer_url"`
}

// MarkdownConfig controls conversion and highlighting.
type MarkdownConfig struct {
	// Enabled turns the markdown converter on. Off shows documents as raw text.
	Enabled bool `yaml:"enabled" koanf:"enabled"`
	// Highlight runs the code highlighter over each converted code block.
	Highlight bool `yaml:"highlight" koanf:"highlight"`
	// InlineHighlight highlights during conversion instead of per block.
	InlineHighlight bool   `yaml:"inline_highlight" koanf:"inline_highlight"`
	Style           string `yaml:"style" koanf:"style"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port            int  `yaml:"port" koanf:"port"`
	AllowAllOrigins bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
}

// HistoryConfig controls the load-attempt log.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled" koanf:"enabled"`
	Path    string `yaml:"path" koanf:"path"`
}
