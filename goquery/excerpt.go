// Package goquery extracts plain text from rendered HTML with goquery.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/litdoc"
)

// Ensure Excerpter implements litdoc.Excerpter at compile time.
var _ litdoc.Excerpter = (*Excerpter)(nil)

// Excerpter extracts the visible text of an HTML fragment.
type Excerpter struct{}

// NewExcerpter creates a new Excerpter.
func NewExcerpter() *Excerpter {
	return &Excerpter{}
}

// Excerpt returns the text content of html with runs of whitespace collapsed
// to single spaces, cut to at most maxLen runes. An ellipsis marks a cut.
// A non-positive maxLen means no limit.
func (e *Excerpter) Excerpt(html string, maxLen int) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", litdoc.Errorf(litdoc.EINVALID, "failed to parse HTML: %v", err)
	}

	// Script and style content is not visible text
	doc.Find("script, style").Remove()

	text := strings.Join(strings.Fields(doc.Text()), " ")
	return truncate(text, maxLen), nil
}

func truncate(text string, maxLen int) string {
	if maxLen <= 0 {
		return text
	}
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}
	if maxLen == 1 {
		return "…"
	}
	return strings.TrimRight(string(runes[:maxLen-1]), " ") + "…"
}
