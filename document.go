package litdoc

import (
	"io"
	"path"
)

// DocumentSummary describes a generated document on the index page.
type DocumentSummary struct {
	Title          string `json:"title"`
	SourcePath     string `json:"sourcePath"`
	RelativeURL    string `json:"relativeUrl"`
	DocsExcerpt    string `json:"docsExcerpt"`
	CodeExcerpt    string `json:"codeExcerpt"`
	LinesOfCode    int    `json:"linesOfCode"`
	LinesOfComment int    `json:"linesOfComment"`
}

// RelativeDirectory returns the directory of the document relative to the
// output root, or "" for documents at the root.
func (s *DocumentSummary) RelativeDirectory() string {
	dir := path.Dir(s.RelativeURL)
	if dir == "." {
		return ""
	}
	return dir
}

// DocumentLink points from one page to another document of the same job.
type DocumentLink struct {
	Title string
	URL   string
}

// DocumentPage is the data passed to the document template.
type DocumentPage struct {
	Title       string
	ProjectName string
	SourcePath  string
	RootPath    string
	IndexFile   string
	Sections    []*Section
	Documents   []DocumentLink
}

// IndexPage is the data passed to the index template.
type IndexPage struct {
	Title       string
	ProjectName string
	IndexFile   string
	Documents   []*DocumentSummary
}

// Renderer converts Markdown documentation into HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

// Highlighter renders source code as syntax highlighted HTML.
type Highlighter interface {
	// Highlight renders code with the named lexer. Unknown lexers fall
	// back to plain text.
	Highlight(lexer string, code string) (string, error)

	// Stylesheet returns the CSS matching the generated markup.
	Stylesheet() (string, error)
}

// Excerpter extracts a plain-text excerpt from rendered HTML.
type Excerpter interface {
	// Excerpt returns at most maxLen runes of the text content of html,
	// with whitespace collapsed.
	Excerpt(html string, maxLen int) (string, error)
}

// TemplateRenderer renders the HTML pages of a job.
type TemplateRenderer interface {
	RenderDocument(w io.Writer, page *DocumentPage) error
	RenderIndex(w io.Writer, page *IndexPage) error

	// Stylesheet returns the CSS shared by all pages.
	Stylesheet() string
}
