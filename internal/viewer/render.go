package viewer

import (
	"bytes"
	"fmt"
	"html/template"

	"go.uber.org/zap"

	"github.com/ziadkadry99/docviewer/internal/catalog"
	"github.com/ziadkadry99/docviewer/internal/markdown"
)

// LoadingPlaceholder is shown in the content region while a load is in flight.
const LoadingPlaceholder template.HTML = `<div class="loading">Loading documentation...</div>`

// View is the set of page regions a viewer cycle writes to. Each call
// replaces the region's previous content.
type View interface {
	SetNav(items []NavItem)
	SetContent(content template.HTML)
	SetTitle(title string)
}

// StateObserver is implemented by views that want to see every transition.
type StateObserver interface {
	SetState(seq uint64, s State)
}

// Renderer turns a LoadResult into page content. Converter and Highlighter
// are optional: without a converter the raw text is shown preformatted,
// without a highlighter code blocks are left as converted.
type Renderer struct {
	catalog     catalog.Catalog
	siteName    string
	converter   markdown.Converter
	highlighter markdown.Highlighter
	logger      *zap.Logger
}

// RendererOptions configures a Renderer.
type RendererOptions struct {
	Catalog     catalog.Catalog
	SiteName    string
	Converter   markdown.Converter
	Highlighter markdown.Highlighter
	Logger      *zap.Logger
}

// NewRenderer creates a Renderer.
func NewRenderer(opts RendererOptions) *Renderer {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{
		catalog:     opts.Catalog,
		siteName:    opts.SiteName,
		converter:   opts.Converter,
		highlighter: opts.Highlighter,
		logger:      logger,
	}
}

// Title is the page title for filename: "<friendly name> - <site name>".
func (r *Renderer) Title(filename string) string {
	return fmt.Sprintf("%s - %s", r.catalog.FriendlyTitle(filename), r.siteName)
}

// Render writes result into v's content region and sets the page title.
func (r *Renderer) Render(result LoadResult, filename string, v View) {
	if result.OK {
		v.SetContent(r.renderDocument(result.Text))
	} else {
		v.SetContent(ErrorBlock(filename, result.Reason))
	}
	v.SetTitle(r.Title(filename))
}

func (r *Renderer) renderDocument(text string) template.HTML {
	if r.converter == nil {
		return Preformatted(text)
	}

	var buf bytes.Buffer
	if err := r.converter.Convert([]byte(text), &buf); err != nil {
		r.logger.Warn("markdown conversion failed, showing raw text", zap.Error(err))
		return Preformatted(text)
	}
	content := buf.String()

	if r.highlighter != nil {
		var blocks int
		content, blocks = markdown.HighlightBlocks(content, r.highlighter, func(lang string, err error) {
			r.logger.Debug("skipping code block highlight", zap.String("lang", lang), zap.Error(err))
		})
		r.logger.Debug("highlighted code blocks", zap.Int("blocks", blocks))
	}
	return template.HTML(content)
}

// Preformatted wraps raw text in a <pre> block without converting it.
func Preformatted(text string) template.HTML {
	return template.HTML("<pre>" + template.HTMLEscapeString(text) + "</pre>")
}

// ErrorBlock is the content shown when a document could not be loaded.
func ErrorBlock(filename, reason string) template.HTML {
	return template.HTML(fmt.Sprintf(`<div class="error">
  <h2>Error Loading Document</h2>
  <p>Could not load <code>%s</code>. Please check if the file exists.</p>
  <p>Error: %s</p>
</div>`, template.HTMLEscapeString(filename), template.HTMLEscapeString(reason)))
}
