// Package site serves the documentation viewer over HTTP: the viewer page,
// its JSON endpoints, the live websocket channel and the raw documents.
package site

import (
	"encoding/json"
	"html/template"
	"io/fs"
	"net/http"
	"os/exec"
	"runtime"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/ziadkadry99/docviewer/internal/markdown"
	"github.com/ziadkadry99/docviewer/internal/viewer"
)

// Options configures a Site.
type Options struct {
	Controller *viewer.Controller
	// Docs is served as-is under "/" so that "../<filename>" relative to the
	// viewer page resolves to the raw document.
	Docs fs.FS
	// ViewerPath is where the viewer page lives, with leading and trailing
	// slashes. Defaults to "/viewer/".
	ViewerPath string
	SiteName   string
	// Styles writes the highlight stylesheet; nil serves an empty one.
	Styles *markdown.ChromaHighlighter
	Logger *zap.Logger
}

// Site holds the HTTP handlers of the viewer.
type Site struct {
	controller *viewer.Controller
	docs       fs.FS
	viewerPath string
	siteName   string
	styles     *markdown.ChromaHighlighter
	logger     *zap.Logger
	page       *template.Template
}

// New creates a Site.
func New(opts Options) *Site {
	viewerPath := opts.ViewerPath
	if viewerPath == "" {
		viewerPath = "/viewer/"
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Site{
		controller: opts.Controller,
		docs:       opts.Docs,
		viewerPath: viewerPath,
		siteName:   opts.SiteName,
		styles:     opts.Styles,
		logger:     logger,
		page:       template.Must(template.New("viewer").Parse(pageTemplate)),
	}
}

// ViewerPath returns the path of the viewer page.
func (s *Site) ViewerPath() string { return s.viewerPath }

// RegisterRoutes mounts the request/response routes.
func (s *Site) RegisterRoutes(r chi.Router) {
	r.Get(s.viewerPath, s.handlePage)
	r.Get(s.viewerPath+"viewer.html", s.handlePage)
	r.Get(s.viewerPath+"viewer.css", s.handleAsset("text/css; charset=utf-8", cssContent))
	r.Get(s.viewerPath+"viewer.js", s.handleAsset("application/javascript; charset=utf-8", jsContent))
	r.Get(s.viewerPath+"highlight.css", s.handleHighlightCSS)

	r.Get("/api/viewer/catalog", s.handleCatalog)
	r.Get("/api/viewer/nav", s.handleNav)
	r.Get("/api/viewer/document", s.handleDocument)

	if s.docs != nil {
		r.Handle("/*", http.FileServer(http.FS(s.docs)))
	}
}

// RegisterStreamRoutes mounts the long-lived routes.
func (s *Site) RegisterStreamRoutes(r chi.Router) {
	r.Get("/ws/viewer", s.handleLive)
}

// pageData feeds pageTemplate.
type pageData struct {
	Title      string
	SiteName   string
	ViewerPath string
	Nav        template.HTML
	Content    template.HTML
	Query      string
	State      viewer.State
	Seq        uint64
}

func (s *Site) handlePage(w http.ResponseWriter, r *http.Request) {
	page := &viewer.Page{}
	state := s.controller.Run(r.Context(), r.URL.RawQuery, page)

	query := r.URL.Query().Get(viewer.FilterParam)
	nav := page.Nav()
	viewer.ApplyFilter(query, nav)

	data := pageData{
		Title:      page.Title(),
		SiteName:   s.siteName,
		ViewerPath: s.viewerPath,
		Nav:        viewer.NavHTML(nav),
		Content:    page.Content(),
		Query:      query,
		State:      state,
		Seq:        page.Seq(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.page.Execute(w, data); err != nil {
		s.logger.Error("rendering viewer page", zap.Error(err))
	}
}

func (s *Site) handleAsset(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Write([]byte(body))
	}
}

func (s *Site) handleHighlightCSS(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	if s.styles == nil {
		return
	}
	if err := s.styles.WriteCSS(w); err != nil {
		s.logger.Warn("writing highlight css", zap.Error(err))
	}
}

func (s *Site) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.controller.Catalog())
}

func (s *Site) handleNav(w http.ResponseWriter, r *http.Request) {
	c := s.controller.Catalog()
	active := viewer.ResolveActiveFilename(r.URL.RawQuery, c)
	nav := viewer.RenderNav(c, active)
	viewer.ApplyFilter(r.URL.Query().Get(viewer.FilterParam), nav)
	writeJSON(w, http.StatusOK, nav)
}

// documentResponse is the JSON form of one finished viewer cycle.
type documentResponse struct {
	Seq      uint64           `json:"seq"`
	State    viewer.State     `json:"state"`
	Filename string           `json:"filename"`
	Title    string           `json:"title"`
	Content  string           `json:"content"`
	Nav      []viewer.NavItem `json:"nav"`
}

func (s *Site) handleDocument(w http.ResponseWriter, r *http.Request) {
	page := &viewer.Page{}
	state := s.controller.Run(r.Context(), r.URL.RawQuery, page)

	writeJSON(w, http.StatusOK, documentResponse{
		Seq:      page.Seq(),
		State:    state,
		Filename: viewer.ResolveActiveFilename(r.URL.RawQuery, s.controller.Catalog()),
		Title:    page.Title(),
		Content:  string(page.Content()),
		Nav:      page.Nav(),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// OpenBrowser opens the given URL in the default browser.
func OpenBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", url)
	case "darwin":
		cmd = exec.Command("open", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	_ = cmd.Start()
}

// PageURL is the absolute URL of the viewer page on a server at base.
func PageURL(base, viewerPath string) string {
	return strings.TrimSuffix(base, "/") + viewerPath + "viewer.html"
}
