// Package chroma highlights source code with chroma.
package chroma

import (
	"bytes"
	"strings"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/fwojciec/litdoc"
)

// DefaultStyle is the color scheme used when none is given.
const DefaultStyle = "github"

// Ensure Highlighter implements litdoc.Highlighter at compile time.
var _ litdoc.Highlighter = (*Highlighter)(nil)

// Highlighter renders code as HTML with CSS classes, so one stylesheet
// serves every page.
type Highlighter struct {
	formatter *chromahtml.Formatter
	style     *chroma.Style
}

// NewHighlighter creates a Highlighter using the named chroma style.
// Unknown style names fall back to chroma's default style.
func NewHighlighter(style string) *Highlighter {
	if style == "" {
		style = DefaultStyle
	}
	return &Highlighter{
		formatter: chromahtml.New(chromahtml.WithClasses(true)),
		style:     styles.Get(style),
	}
}

// Highlight renders code with the lexer registered under name, alias or
// file extension. Unknown lexers render plain text.
func (h *Highlighter) Highlight(lexer string, code string) (string, error) {
	if code == "" {
		return "", nil
	}

	l := lookupLexer(lexer)
	iterator, err := l.Tokenise(nil, code)
	if err != nil {
		return "", litdoc.Errorf(litdoc.EINTERNAL, "tokenise %s: %v", lexer, err)
	}

	var buf bytes.Buffer
	if err := h.formatter.Format(&buf, h.style, iterator); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Stylesheet returns the CSS for the classes emitted by Highlight.
func (h *Highlighter) Stylesheet() (string, error) {
	var buf bytes.Buffer
	if err := h.formatter.WriteCSS(&buf, h.style); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func lookupLexer(name string) chroma.Lexer {
	l := lexers.Get(name)
	if l == nil && name != "" && !strings.HasPrefix(name, ".") {
		l = lexers.Match("file." + name)
	}
	if l == nil {
		l = lexers.Fallback
	}
	return chroma.Coalesce(l)
}
