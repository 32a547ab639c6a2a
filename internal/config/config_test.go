package config

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/ziadkadry99/docviewer/internal/catalog"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.SiteName != "Apex SDK" {
		t.Errorf("expected default site_name %q, got %q", "Apex SDK", cfg.SiteName)
	}
	if cfg.Loader.Mode != LoaderFS {
		t.Errorf("expected default loader mode %q, got %q", LoaderFS, cfg.Loader.Mode)
	}
	if cfg.ViewerPath != "/viewer/" {
		t.Errorf("expected default viewer_path /viewer/, got %q", cfg.ViewerPath)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if !cfg.Markdown.Enabled || !cfg.Markdown.Highlight {
		t.Error("markdown conversion and highlighting should default to on")
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.docviewer.yml")

	original := DefaultConfig()
	original.SiteName = "Widgets"
	original.DocsDir = "docs"
	original.Loader = LoaderConfig{Mode: LoaderHTTP, ViewerURL: "https://example.com/site/viewer.html"}
	original.Catalog = catalog.Catalog{
		{DisplayName: "Intro", Filename: "INTRO.md", Title: "Introduction"},
		{DisplayName: "FAQ", Filename: "FAQ.md"},
	}
	original.Server.Port = 9090
	original.Markdown.InlineHighlight = true

	// Save.
	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	// Load back.
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Verify round-trip.
	if loaded.SiteName != original.SiteName {
		t.Errorf("site_name: got %q, want %q", loaded.SiteName, original.SiteName)
	}
	if loaded.Loader != original.Loader {
		t.Errorf("loader: got %+v, want %+v", loaded.Loader, original.Loader)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("port: got %d, want 9090", loaded.Server.Port)
	}
	if !loaded.Markdown.InlineHighlight {
		t.Error("inline_highlight lost in round trip")
	}
	if len(loaded.Catalog) != 2 {
		t.Fatalf("catalog length: got %d, want 2", len(loaded.Catalog))
	}
	for i, e := range loaded.Catalog {
		if e != original.Catalog[i] {
			t.Errorf("catalog[%d]: got %+v, want %+v", i, e, original.Catalog[i])
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load should not fail for missing file: %v", err)
	}
	if cfg.SiteName != "Apex SDK" {
		t.Errorf("expected default site name, got %q", cfg.SiteName)
	}
	if len(cfg.Catalog) != 0 {
		t.Errorf("expected no configured catalog, got %d entries", len(cfg.Catalog))
	}
}

func TestLoadEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.yml")

	cfg := DefaultConfig()
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	t.Setenv("DOCVIEWER_SITE_NAME", "Override")
	t.Setenv("DOCVIEWER_SERVER__PORT", "9999")
	t.Setenv("DOCVIEWER_LOADER__MODE", "http")

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.SiteName != "Override" {
		t.Errorf("env override failed: got %q, want %q", loaded.SiteName, "Override")
	}
	if loaded.Server.Port != 9999 {
		t.Errorf("nested env override failed: got %d, want 9999", loaded.Server.Port)
	}
	if loaded.Loader.Mode != LoaderHTTP {
		t.Errorf("loader mode override failed: got %q", loaded.Loader.Mode)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(path, []byte("site_name: [unterminated"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestEnvKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"DOCVIEWER_SITE_NAME", "site_name"},
		{"DOCVIEWER_SERVER__PORT", "server.port"},
		{"DOCVIEWER_LOADER__VIEWER_URL", "loader.viewer_url"},
	}
	for _, tt := range tests {
		if got := envKey(tt.in); got != tt.want {
			t.Errorf("envKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"empty site name", func(c *Config) { c.SiteName = "" }, true},
		{"empty docs dir", func(c *Config) { c.DocsDir = "" }, true},
		{"viewer path without slash", func(c *Config) { c.ViewerPath = "viewer" }, true},
		{"unknown loader", func(c *Config) { c.Loader.Mode = "s3" }, true},
		{"http without url", func(c *Config) { c.Loader.Mode = LoaderHTTP }, true},
		{"http with url", func(c *Config) {
			c.Loader = LoaderConfig{Mode: LoaderHTTP, ViewerURL: "http://localhost:8080/viewer/"}
		}, false},
		{"catalog entry without filename", func(c *Config) {
			c.Catalog = catalog.Catalog{{DisplayName: "X"}}
		}, true},
		{"catalog entry without name", func(c *Config) {
			c.Catalog = catalog.Catalog{{Filename: "X.md"}}
		}, true},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, true},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"history without path", func(c *Config) { c.History.Path = "" }, true},
		{"history disabled without path", func(c *Config) {
			c.History = HistoryConfig{}
		}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestResolveCatalog(t *testing.T) {
	docs := fstest.MapFS{
		"B.md": {Data: []byte("# Bravo")},
		"A.md": {Data: []byte("# Alpha")},
	}

	cfg := DefaultConfig()
	c, err := cfg.ResolveCatalog(docs)
	if err != nil {
		t.Fatalf("ResolveCatalog: %v", err)
	}
	if c.First() != "QUICK_START.md" {
		t.Errorf("expected built-in catalog, got first %q", c.First())
	}

	cfg.Discover = []string{"*.md"}
	c, err = cfg.ResolveCatalog(docs)
	if err != nil {
		t.Fatalf("ResolveCatalog discover: %v", err)
	}
	if len(c) != 2 || c[0].DisplayName != "Alpha" {
		t.Errorf("unexpected discovered catalog %+v", c)
	}

	cfg.Catalog = catalog.Catalog{{DisplayName: "Only", Filename: "ONLY.md"}}
	c, err = cfg.ResolveCatalog(docs)
	if err != nil {
		t.Fatalf("ResolveCatalog explicit: %v", err)
	}
	if len(c) != 1 || c[0].Filename != "ONLY.md" {
		t.Errorf("explicit catalog should win, got %+v", c)
	}

	cfg.Catalog = nil
	cfg.Discover = []string{"*.txt"}
	if _, err := cfg.ResolveCatalog(docs); err == nil {
		t.Error("expected error when discovery finds nothing")
	}
}

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"a,b,c", []string{"a", "b", "c"}},
		{" a , b , c ", []string{"a", "b", "c"}},
		{"**/*.md", []string{"**/*.md"}},
		{"", nil},
		{"  ,  , ", nil},
	}
	for _, tt := range tests {
		got := splitAndTrim(tt.input)
		if len(got) != len(tt.want) {
			t.Errorf("splitAndTrim(%q) len = %d, want %d", tt.input, len(got), len(tt.want))
			continue
		}
		for i, v := range got {
			if v != tt.want[i] {
				t.Errorf("splitAndTrim(%q)[%d] = %q, want %q", tt.input, i, v, tt.want[i])
			}
		}
	}
}
