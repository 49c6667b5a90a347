// Package html renders documentation pages with html/template.
package html

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"github.com/fwojciec/litdoc"
)

//go:embed templates
var templatesFS embed.FS

// Ensure Templates implements litdoc.TemplateRenderer at compile time.
var _ litdoc.TemplateRenderer = (*Templates)(nil)

// Templates renders document and index pages.
type Templates struct {
	document   *template.Template
	index      *template.Template
	stylesheet string
}

var funcs = template.FuncMap{
	// raw marks HTML produced by the renderer and highlighter as safe.
	"raw": func(s string) template.HTML { return template.HTML(s) },
	"inc": func(i int) int { return i + 1 },
}

// NewTemplates returns the built-in templates.
func NewTemplates() (*Templates, error) {
	return NewTemplatesFromFiles("", "")
}

// NewTemplatesFromFiles returns templates read from the given files. An empty
// file name selects the built-in template for that page.
func NewTemplatesFromFiles(documentFile, indexFile string) (*Templates, error) {
	document, err := parse("document", documentFile)
	if err != nil {
		return nil, err
	}
	index, err := parse("index", indexFile)
	if err != nil {
		return nil, err
	}
	css, err := templatesFS.ReadFile("templates/litdoc.css")
	if err != nil {
		return nil, err
	}

	return &Templates{
		document:   document,
		index:      index,
		stylesheet: string(css),
	}, nil
}

func parse(name, file string) (*template.Template, error) {
	var text []byte
	var err error
	if file == "" {
		text, err = templatesFS.ReadFile("templates/" + name + ".html")
	} else {
		text, err = os.ReadFile(file)
		if os.IsNotExist(err) {
			return nil, litdoc.Errorf(litdoc.ENOTFOUND, "%s template %q not found", name, file)
		}
	}
	if err != nil {
		return nil, err
	}

	tmpl, err := template.New(name).Funcs(funcs).Parse(string(text))
	if err != nil {
		return nil, litdoc.Errorf(litdoc.EINVALID, "parse %s template: %v", name, err)
	}
	return tmpl, nil
}

// RenderDocument writes the page of one source file.
func (t *Templates) RenderDocument(w io.Writer, page *litdoc.DocumentPage) error {
	if err := t.document.Execute(w, page); err != nil {
		return fmt.Errorf("render document %s: %w", page.SourcePath, err)
	}
	return nil
}

// RenderIndex writes the index page.
func (t *Templates) RenderIndex(w io.Writer, page *litdoc.IndexPage) error {
	if err := t.index.Execute(w, page); err != nil {
		return fmt.Errorf("render index: %w", err)
	}
	return nil
}

// Stylesheet returns the CSS shared by all pages.
func (t *Templates) Stylesheet() string {
	return t.stylesheet
}
