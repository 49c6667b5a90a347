// Package goldmark renders Markdown documentation with goldmark.
package goldmark

import (
	"bytes"
	"strings"

	"github.com/fwojciec/litdoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// Ensure Renderer implements litdoc.Renderer at compile time.
var _ litdoc.Renderer = (*Renderer)(nil)

// Renderer wraps goldmark to convert Markdown to HTML.
// Raw HTML in comments, such as documentation tags no markdown map
// rewrote, is passed through.
type Renderer struct {
	md goldmark.Markdown
}

// NewRenderer creates a new Renderer with GitHub Flavored Markdown enabled.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return &Renderer{md: md}
}

// Render transforms Markdown into HTML. Blank input renders to "".
func (r *Renderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
