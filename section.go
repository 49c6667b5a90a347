package litdoc

import (
	"context"
	"io"
	"strings"
)

// Section is a run of documentation paired with the code that follows it.
type Section struct {
	// Docs is the Markdown recovered from comments.
	Docs string `json:"docs"`

	// Code is the raw source code of the section.
	Code string `json:"code"`

	// DocsHTML and CodeHTML hold the rendered forms once generated.
	DocsHTML string `json:"docsHtml,omitempty"`
	CodeHTML string `json:"codeHtml,omitempty"`

	// StartLine and EndLine are the 1-based source lines covered.
	StartLine int `json:"startLine"`
	EndLine   int `json:"endLine"`
}

// HasDocs reports whether the section carries any documentation text.
func (s *Section) HasDocs() bool {
	return strings.TrimSpace(s.Docs) != ""
}

// HasCode reports whether the section carries any code.
func (s *Section) HasCode() bool {
	return strings.TrimSpace(s.Code) != ""
}

// Stats counts the lines of a source file by composition. Mixed lines count
// as both code and comment.
type Stats struct {
	Lines          int `json:"lines"`
	LinesOfCode    int `json:"linesOfCode"`
	LinesOfComment int `json:"linesOfComment"`
}

// SectionBuilder groups the fragments of one file into sections.
//
// A new section starts when a comment follows a line that added code to the
// current section. Comment text is stripped of markup and passed through the
// markdown maps; code text is kept verbatim. Blank lines go to the code of a
// section that already has code and to its docs otherwise.
type SectionBuilder struct {
	maps []MarkdownMap

	sections []*sectionBuffer
	current  *sectionBuffer

	line     int
	lineCode bool
	stats    Stats
}

type sectionBuffer struct {
	docs, code strings.Builder
	hasCode    bool
	start, end int
}

// NewSectionBuilder returns a SectionBuilder applying maps to comment text.
func NewSectionBuilder(maps []MarkdownMap) *SectionBuilder {
	return &SectionBuilder{maps: maps}
}

// Add appends the next fragment of the file. Fragments must be added in scan
// order.
func (b *SectionBuilder) Add(f Fragment) {
	if f.LineNumber != b.line {
		b.endLine()
		b.line = f.LineNumber
		b.countLine(f.Composition)
	}

	switch f.Kind {
	case KindComment:
		if b.current == nil || b.current.hasCode {
			b.startSection(f.LineNumber)
		}
		docs := f.Text
		if f.Style != nil {
			docs = f.Style.Strip(f.Text)
		}
		b.current.docs.WriteString(ApplyMarkdownMaps(b.maps, docs))
		b.current.docs.WriteString("\n")

	case KindCode:
		if b.current == nil {
			b.startSection(f.LineNumber)
		}
		b.current.code.WriteString(f.Text)
		b.lineCode = true

	default:
		if b.current == nil {
			b.startSection(f.LineNumber)
		}
		if b.current.code.Len() > 0 {
			b.current.code.WriteString(f.Text)
			b.current.code.WriteString("\n")
		} else {
			b.current.docs.WriteString("\n")
		}
	}

	b.current.end = f.LineNumber
}

func (b *SectionBuilder) startSection(line int) {
	b.current = &sectionBuffer{start: line, end: line}
	b.sections = append(b.sections, b.current)
}

// endLine terminates the code of the line in progress.
func (b *SectionBuilder) endLine() {
	if b.lineCode {
		b.current.code.WriteString("\n")
		b.current.hasCode = true
	}
	b.lineCode = false
}

func (b *SectionBuilder) countLine(c Composition) {
	b.stats.Lines++
	if c.Has(CompositionCode) {
		b.stats.LinesOfCode++
	}
	if c.Has(CompositionComment) {
		b.stats.LinesOfComment++
	}
}

// Sections returns the sections built so far. Call it after the last
// fragment has been added.
func (b *SectionBuilder) Sections() []*Section {
	b.endLine()

	sections := make([]*Section, 0, len(b.sections))
	for _, buf := range b.sections {
		sections = append(sections, &Section{
			Docs:      buf.docs.String(),
			Code:      buf.code.String(),
			StartLine: buf.start,
			EndLine:   buf.end,
		})
	}
	return sections
}

// Stats returns the line counts of the fragments added so far.
func (b *SectionBuilder) Stats() Stats {
	return b.stats
}

// BuildSections scans r with the comment styles of lang and groups the
// result into sections. Cancellation is checked between fragments.
func BuildSections(ctx context.Context, r io.Reader, lang *Language) ([]*Section, Stats, error) {
	s := NewScanner(r, lang.Styles)
	b := NewSectionBuilder(lang.MarkdownMaps)

	for s.Scan() {
		if err := ctx.Err(); err != nil {
			return nil, Stats{}, err
		}
		b.Add(s.Fragment())
	}
	if err := s.Err(); err != nil {
		return nil, Stats{}, err
	}

	return b.Sections(), b.Stats(), nil
}
