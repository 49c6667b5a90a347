package mock

import (
	"io"

	"github.com/fwojciec/litdoc"
)

// Compile-time interface verification.
var (
	_ litdoc.Renderer         = (*Renderer)(nil)
	_ litdoc.Highlighter      = (*Highlighter)(nil)
	_ litdoc.Excerpter        = (*Excerpter)(nil)
	_ litdoc.TemplateRenderer = (*TemplateRenderer)(nil)
)

// Renderer is a mock implementation of litdoc.Renderer.
type Renderer struct {
	RenderFn func(markdown string) (string, error)
}

func (r *Renderer) Render(markdown string) (string, error) {
	return r.RenderFn(markdown)
}

// Highlighter is a mock implementation of litdoc.Highlighter.
type Highlighter struct {
	HighlightFn  func(lexer string, code string) (string, error)
	StylesheetFn func() (string, error)
}

func (h *Highlighter) Highlight(lexer string, code string) (string, error) {
	return h.HighlightFn(lexer, code)
}

func (h *Highlighter) Stylesheet() (string, error) {
	return h.StylesheetFn()
}

// Excerpter is a mock implementation of litdoc.Excerpter.
type Excerpter struct {
	ExcerptFn func(html string, maxLen int) (string, error)
}

func (e *Excerpter) Excerpt(html string, maxLen int) (string, error) {
	return e.ExcerptFn(html, maxLen)
}

// TemplateRenderer is a mock implementation of litdoc.TemplateRenderer.
type TemplateRenderer struct {
	RenderDocumentFn func(w io.Writer, page *litdoc.DocumentPage) error
	RenderIndexFn    func(w io.Writer, page *litdoc.IndexPage) error
	StylesheetFn     func() string
}

func (t *TemplateRenderer) RenderDocument(w io.Writer, page *litdoc.DocumentPage) error {
	return t.RenderDocumentFn(w, page)
}

func (t *TemplateRenderer) RenderIndex(w io.Writer, page *litdoc.IndexPage) error {
	return t.RenderIndexFn(w, page)
}

func (t *TemplateRenderer) Stylesheet() string {
	return t.StylesheetFn()
}
