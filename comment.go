package litdoc

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// CommentStyle describes one comment syntax of a language, such as `//` line
// comments or `/* */` block comments. A style is immutable once constructed
// and safe for concurrent use by any number of scans.
type CommentStyle struct {
	start           string
	end             string
	collapseRepeats bool
	trimChars       string

	// cleaner is compiled once at construction and reused by Strip.
	cleaner *regexp.Regexp

	// delimiters matches fragments made only of collapsed delimiters, such
	// as /******/. Nil unless the style is a block style with collapse.
	delimiters *regexp.Regexp
}

// NewCommentStyle returns a comment style for the given delimiters.
//
// An empty end token makes a line style, which terminates at the end of the
// physical line. When collapseRepeats is set, runs of the last character of
// start and of the first character of end are treated as delimiter (`///`,
// `/**`, `**/`). Characters in trimChars are removed from the front of the
// text recovered by Strip.
//
// Returns EINVALID if start is empty.
func NewCommentStyle(start, end string, collapseRepeats bool, trimChars string) (*CommentStyle, error) {
	if start == "" {
		return nil, Errorf(EINVALID, "comment style start token required")
	}

	s := &CommentStyle{
		start:           start,
		end:             end,
		collapseRepeats: collapseRepeats,
		trimChars:       trimChars,
	}
	s.cleaner = regexp.MustCompile(s.cleanerPattern())
	if collapseRepeats && s.IsBlock() {
		s.delimiters = regexp.MustCompile(s.delimitersPattern())
	}
	return s, nil
}

// MustCommentStyle is like NewCommentStyle but panics on an invalid style.
// It is intended for package-level style tables and tests.
func MustCommentStyle(start, end string, collapseRepeats bool, trimChars string) *CommentStyle {
	s, err := NewCommentStyle(start, end, collapseRepeats, trimChars)
	if err != nil {
		panic(err)
	}
	return s
}

// Start returns the token that opens a comment.
func (s *CommentStyle) Start() string { return s.start }

// End returns the token that closes a block comment, or "" for line styles.
func (s *CommentStyle) End() string { return s.end }

// CollapseRepeats reports whether repeated delimiter characters are markup.
func (s *CommentStyle) CollapseRepeats() bool { return s.collapseRepeats }

// TrimChars returns the characters Strip removes from the front of comments.
func (s *CommentStyle) TrimChars() string { return s.trimChars }

// IsBlock reports whether the style has an end token and may span lines.
func (s *CommentStyle) IsBlock() bool { return s.end != "" }

// String returns the delimiters of the style, e.g. "/* */" or "//".
func (s *CommentStyle) String() string {
	if s.IsBlock() {
		return s.start + " " + s.end
	}
	return s.start
}

// cleanerPattern builds the expression used by Strip:
// leading space, optional start token, lazy body, optional end token,
// trailing space. (?s) lets the body span special characters such as \r.
func (s *CommentStyle) cleanerPattern() string {
	var b strings.Builder
	b.WriteString(`(?s)^\s*(?:`)
	b.WriteString(regexp.QuoteMeta(s.start))
	if s.collapseRepeats {
		b.WriteString("+")
	}
	b.WriteString(`)?(?P<comment>.*?)`)
	if s.IsBlock() {
		b.WriteString("(?:")
		if s.collapseRepeats {
			r, size := utf8.DecodeRuneInString(s.end)
			b.WriteString(regexp.QuoteMeta(string(r)))
			b.WriteString("+")
			b.WriteString(regexp.QuoteMeta(s.end[size:]))
		} else {
			b.WriteString(regexp.QuoteMeta(s.end))
		}
		b.WriteString(")?")
	}
	b.WriteString(`\s*$`)
	return b.String()
}

// delimitersPattern matches a start token whose last character repeats,
// followed by any run of the end token's first character and the rest of
// the end token. A greedy start run would otherwise leave the body to
// swallow the tail of the end token.
func (s *CommentStyle) delimitersPattern() string {
	r, size := utf8.DecodeRuneInString(s.end)
	first := regexp.QuoteMeta(string(r))
	return `^\s*` + regexp.QuoteMeta(s.start) + `+` + first + `*` + regexp.QuoteMeta(s.end[size:]) + `\s*$`
}

// Strip removes comment markup and the whitespace surrounding it from the
// raw text of a comment fragment, returning the documentation it carries.
//
// Interior lines of a block comment that do not have the expected shape and
// would strip down to nothing are returned unchanged, so blank-looking
// continuation lines keep their content. Strip never fails.
func (s *CommentStyle) Strip(text string) string {
	if s.delimiters != nil && s.delimiters.MatchString(text) {
		return ""
	}

	var body string
	if m := s.cleaner.FindStringSubmatch(text); m != nil {
		body = m[1]
	}

	if s.trimChars != "" {
		body = strings.TrimLeft(body, s.trimChars)
	}

	if strings.TrimSpace(body) == "" {
		trimmed := strings.TrimFunc(text, unicode.IsSpace)
		opens := strings.HasPrefix(trimmed, s.start)
		closes := s.IsBlock() && strings.HasSuffix(trimmed, s.end)
		if !opens && !closes {
			return text
		}
	}

	return body
}
