package markdown

import (
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Highlighter highlights a single code block. lang may be empty.
type Highlighter interface {
	Highlight(lang, code string) (string, error)
}

// ChromaHighlighter highlights code with chroma, emitting CSS classes
// rather than inline styles.
type ChromaHighlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

// NewChromaHighlighter creates a highlighter for the named chroma style.
// Unknown styles fall back to chroma's default.
func NewChromaHighlighter(style string) *ChromaHighlighter {
	if style == "" {
		style = DefaultStyle
	}
	return &ChromaHighlighter{
		style:     styles.Get(style),
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
	}
}

// Highlight renders code as a highlighted <pre> block.
func (h *ChromaHighlighter) Highlight(lang, code string) (string, error) {
	var lexer chroma.Lexer
	if lang != "" {
		lexer = lexers.Get(lang)
	}
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return "", fmt.Errorf("tokenising %q block: %w", lang, err)
	}

	var b strings.Builder
	if err := h.formatter.Format(&b, h.style, iterator); err != nil {
		return "", fmt.Errorf("formatting %q block: %w", lang, err)
	}
	return b.String(), nil
}

// WriteCSS writes the stylesheet for the highlighter's classes.
func (h *ChromaHighlighter) WriteCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}

const (
	preCodeOpen  = "<pre><code"
	preCodeClose = "</code></pre>"
	langPrefix   = `class="language-`
)

// HighlightBlocks runs h over every <pre><code> block in htmlContent and
// returns the rewritten HTML plus the number of blocks handed to h. A block
// whose highlighting fails is left as converted and onErr, if non-nil, is
// told about it; the remaining blocks are still processed.
func HighlightBlocks(htmlContent string, h Highlighter, onErr func(lang string, err error)) (string, int) {
	var result strings.Builder
	remaining := htmlContent
	invoked := 0

	for {
		idx := strings.Index(remaining, preCodeOpen)
		if idx == -1 {
			result.WriteString(remaining)
			break
		}
		tagEnd := strings.Index(remaining[idx:], ">")
		if tagEnd == -1 {
			result.WriteString(remaining)
			break
		}
		tagEnd += idx
		closeIdx := strings.Index(remaining[tagEnd:], preCodeClose)
		if closeIdx == -1 {
			result.WriteString(remaining)
			break
		}
		closeIdx += tagEnd

		openTag := remaining[idx : tagEnd+1]
		lang := blockLanguage(openTag)
		code := html.UnescapeString(remaining[tagEnd+1 : closeIdx])
		end := closeIdx + len(preCodeClose)

		result.WriteString(remaining[:idx])
		invoked++
		highlighted, err := h.Highlight(lang, code)
		if err != nil {
			if onErr != nil {
				onErr(lang, err)
			}
			result.WriteString(remaining[idx:end])
		} else {
			result.WriteString(highlighted)
		}
		remaining = remaining[end:]
	}

	return result.String(), invoked
}

// blockLanguage extracts "go" from <code class="language-go">.
func blockLanguage(openTag string) string {
	i := strings.Index(openTag, langPrefix)
	if i == -1 {
		return ""
	}
	rest := openTag[i+len(langPrefix):]
	if j := strings.IndexAny(rest, `" `); j >= 0 {
		return rest[:j]
	}
	return ""
}
