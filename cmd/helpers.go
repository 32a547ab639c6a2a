package cmd

import (
	"fmt"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"github.com/ziadkadry99/docviewer/internal/catalog"
	"github.com/ziadkadry99/docviewer/internal/config"
	"github.com/ziadkadry99/docviewer/internal/db"
	"github.com/ziadkadry99/docviewer/internal/history"
	"github.com/ziadkadry99/docviewer/internal/markdown"
	"github.com/ziadkadry99/docviewer/internal/viewer"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `docviewer init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// app is everything a command needs to run viewer cycles.
type app struct {
	cfg        *config.Config
	docs       fs.FS
	catalog    catalog.Catalog
	loader     viewer.Loader
	controller *viewer.Controller
	styles     *markdown.ChromaHighlighter
	history    *history.Store
	db         *db.DB
}

// buildApp wires the viewer from cfg. withHistory opens the history
// database when the config enables it.
func buildApp(cfg *config.Config, withHistory bool) (*app, error) {
	a := &app{cfg: cfg, docs: os.DirFS(cfg.DocsDir)}

	c, err := cfg.ResolveCatalog(a.docs)
	if err != nil {
		return nil, fmt.Errorf("building catalog: %w", err)
	}
	a.catalog = c

	switch cfg.Loader.Mode {
	case config.LoaderHTTP:
		l, err := viewer.NewHTTPLoader(cfg.Loader.ViewerURL, nil)
		if err != nil {
			return nil, fmt.Errorf("creating http loader: %w", err)
		}
		a.loader = l
	default:
		a.loader = viewer.NewFSLoader(a.docs)
	}

	// A nil converter or highlighter disables that stage of rendering.
	var (
		converter   markdown.Converter
		highlighter markdown.Highlighter
	)
	if cfg.Markdown.Highlight {
		a.styles = markdown.NewChromaHighlighter(cfg.Markdown.Style)
	}
	if cfg.Markdown.Enabled {
		switch {
		case cfg.Markdown.Highlight && cfg.Markdown.InlineHighlight:
			converter = markdown.NewHighlightingConverter(cfg.Markdown.Style)
		case cfg.Markdown.Highlight:
			converter = markdown.NewConverter()
			highlighter = a.styles
		default:
			converter = markdown.NewConverter()
		}
	}

	var recorder viewer.Recorder
	if withHistory && cfg.History.Enabled {
		database, err := db.Open(cfg.History.Path)
		if err != nil {
			return nil, fmt.Errorf("opening history database: %w", err)
		}
		a.db = database
		a.history = history.NewStore(database)
		recorder = a.history
	}

	renderer := viewer.NewRenderer(viewer.RendererOptions{
		Catalog:     a.catalog,
		SiteName:    cfg.SiteName,
		Converter:   converter,
		Highlighter: highlighter,
		Logger:      logger,
	})
	a.controller = viewer.NewController(viewer.ControllerOptions{
		Catalog:           a.catalog,
		Loader:            a.loader,
		Renderer:          renderer,
		Recorder:          recorder,
		RestrictToCatalog: cfg.RestrictToCatalog,
		Logger:            logger,
	})

	logger.Debug("viewer ready",
		zap.Int("documents", len(a.catalog)),
		zap.String("loader", string(cfg.Loader.Mode)),
		zap.Bool("markdown", converter != nil),
		zap.Bool("highlight", cfg.Markdown.Highlight),
		zap.Bool("history", a.history != nil),
	)
	return a, nil
}

// Close releases the history database, if open.
func (a *app) Close() error {
	if a.db != nil {
		return a.db.Close()
	}
	return nil
}
