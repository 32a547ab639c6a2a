package markdown

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

type recordingHighlighter struct {
	langs []string
	codes []string
	fail  map[string]bool
}

func (r *recordingHighlighter) Highlight(lang, code string) (string, error) {
	r.langs = append(r.langs, lang)
	r.codes = append(r.codes, code)
	if r.fail[lang] {
		return "", errors.New("boom")
	}
	return `<pre class="hl">` + lang + `</pre>`, nil
}

func TestConverterHeading(t *testing.T) {
	var buf bytes.Buffer
	if err := NewConverter().Convert([]byte("# Hello"), &buf); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	got := buf.String()
	if !strings.Contains(got, `<h1 id="hello">Hello</h1>`) {
		t.Errorf("expected h1 with auto id, got %q", got)
	}
}

func TestConverterGFMTable(t *testing.T) {
	src := "| a | b |\n|---|---|\n| 1 | 2 |\n"
	var buf bytes.Buffer
	if err := NewConverter().Convert([]byte(src), &buf); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if !strings.Contains(buf.String(), "<table>") {
		t.Errorf("expected GFM table, got %q", buf.String())
	}
}

func TestHighlightingConverter(t *testing.T) {
	src := "```go\npackage main\n```\n"
	var buf bytes.Buffer
	if err := NewHighlightingConverter("").Convert([]byte(src), &buf); err != nil {
		t.Fatalf("Convert: %v", err)
	}
	got := buf.String()
	if strings.Contains(got, `<pre><code class="language-go">`) {
		t.Error("code block should have been highlighted during conversion")
	}
	if !strings.Contains(got, "chroma") {
		t.Errorf("expected chroma classes, got %q", got)
	}
}

func TestHighlightBlocks(t *testing.T) {
	in := `<p>x</p><pre><code class="language-go">fmt.Println(&quot;hi&quot;)
</code></pre><p>y</p><pre><code>plain &lt;b&gt;
</code></pre>`

	h := &recordingHighlighter{}
	out, n := HighlightBlocks(in, h, nil)
	if n != 2 {
		t.Fatalf("invoked = %d, want 2", n)
	}
	if h.langs[0] != "go" || h.langs[1] != "" {
		t.Errorf("langs = %q", h.langs)
	}
	if h.codes[0] != "fmt.Println(\"hi\")\n" {
		t.Errorf("code not unescaped: %q", h.codes[0])
	}
	if h.codes[1] != "plain <b>\n" {
		t.Errorf("code not unescaped: %q", h.codes[1])
	}
	if !strings.HasPrefix(out, "<p>x</p>") || !strings.HasSuffix(out, `<pre class="hl"></pre>`) {
		t.Errorf("unexpected output %q", out)
	}
	if !strings.Contains(out, "<p>y</p>") {
		t.Error("surrounding content lost")
	}
}

func TestHighlightBlocksSkipsFailures(t *testing.T) {
	in := `<pre><code class="language-bad">a</code></pre><pre><code class="language-go">b</code></pre>`
	h := &recordingHighlighter{fail: map[string]bool{"bad": true}}

	var failed []string
	out, n := HighlightBlocks(in, h, func(lang string, err error) {
		failed = append(failed, lang)
	})
	if n != 2 {
		t.Errorf("invoked = %d, want 2", n)
	}
	if len(failed) != 1 || failed[0] != "bad" {
		t.Errorf("failed = %q, want [bad]", failed)
	}
	if !strings.Contains(out, `<pre><code class="language-bad">a</code></pre>`) {
		t.Error("failed block should be left as converted")
	}
	if !strings.Contains(out, `<pre class="hl">go</pre>`) {
		t.Error("block after the failure should still be highlighted")
	}
}

func TestHighlightBlocksNone(t *testing.T) {
	h := &recordingHighlighter{}
	in := "<h1>Hello</h1>"
	out, n := HighlightBlocks(in, h, nil)
	if n != 0 || out != in {
		t.Errorf("HighlightBlocks = (%q, %d), want unchanged and 0", out, n)
	}
}

func TestChromaHighlighter(t *testing.T) {
	h := NewChromaHighlighter("github")
	out, err := h.Highlight("go", "package main\n")
	if err != nil {
		t.Fatalf("Highlight: %v", err)
	}
	if !strings.Contains(out, `class="chroma"`) {
		t.Errorf("expected chroma class output, got %q", out)
	}

	out, err = h.Highlight("", "just words")
	if err != nil {
		t.Fatalf("Highlight without lang: %v", err)
	}
	if !strings.Contains(out, "words") {
		t.Errorf("fallback lost text: %q", out)
	}

	var css bytes.Buffer
	if err := h.WriteCSS(&css); err != nil {
		t.Fatalf("WriteCSS: %v", err)
	}
	if !strings.Contains(css.String(), ".chroma") {
		t.Error("CSS should target .chroma classes")
	}
}
