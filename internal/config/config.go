package config

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/ziadkadry99/docviewer/internal/catalog"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "DOCVIEWER_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (DOCVIEWER_*). A double underscore separates
// nesting levels: DOCVIEWER_SERVER__PORT sets server.port.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps DOCVIEWER_LOADER__VIEWER_URL to loader.viewer_url.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// validLoaderModes is the set of recognized loader.mode values.
var validLoaderModes = map[LoaderMode]bool{
	LoaderFS:   true,
	LoaderHTTP: true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if c.SiteName == "" {
		return fmt.Errorf("site_name is required")
	}

	if c.DocsDir == "" {
		return fmt.Errorf("docs_dir is required")
	}

	if !strings.HasPrefix(c.ViewerPath, "/") || !strings.HasSuffix(c.ViewerPath, "/") {
		return fmt.Errorf("viewer_path %q must start and end with /", c.ViewerPath)
	}

	if !validLoaderModes[c.Loader.Mode] {
		return fmt.Errorf("invalid loader.mode %q: must be one of fs, http", c.Loader.Mode)
	}
	if c.Loader.Mode == LoaderHTTP && c.Loader.ViewerURL == "" {
		return fmt.Errorf("loader.viewer_url is required when loader.mode is http")
	}

	for i, e := range c.Catalog {
		if e.Filename == "" {
			return fmt.Errorf("catalog entry %d has no filename", i)
		}
		if e.DisplayName == "" {
			return fmt.Errorf("catalog entry %q has no display_name", e.Filename)
		}
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d is out of range", c.Server.Port)
	}

	if c.History.Enabled && c.History.Path == "" {
		return fmt.Errorf("history.path is required when history is enabled")
	}

	return nil
}

// ResolveCatalog returns the configured catalog, a catalog discovered from
// docs when discovery patterns are set, or the built-in default.
func (c *Config) ResolveCatalog(docs fs.FS) (catalog.Catalog, error) {
	if len(c.Catalog) > 0 {
		return c.Catalog, nil
	}
	if len(c.Discover) > 0 {
		discovered, err := catalog.Discover(docs, c.Discover, c.DiscoverExclude)
		if err != nil {
			return nil, fmt.Errorf("discovering catalog in %s: %w", c.DocsDir, err)
		}
		return discovered, nil
	}
	return catalog.Default(), nil
}
