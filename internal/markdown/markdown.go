package markdown

import (
	"io"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultStyle is the chroma style used when none is configured.
const DefaultStyle = "github"

// Converter turns markdown source into HTML. goldmark.Markdown satisfies it.
type Converter interface {
	Convert(source []byte, w io.Writer, opts ...parser.ParseOption) error
}

// NewConverter returns a goldmark converter with GFM and automatic heading IDs.
// Raw HTML in documents is passed through.
func NewConverter() Converter {
	return goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}

// NewHighlightingConverter returns a converter that highlights fenced code
// blocks during conversion. Used when no separate per-block highlighter runs.
func NewHighlightingConverter(style string) Converter {
	if style == "" {
		style = DefaultStyle
	}
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle(style),
				highlighting.WithFormatOptions(
					chromahtml.WithClasses(true),
				),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)
}
