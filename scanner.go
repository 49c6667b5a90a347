package litdoc

import (
	"bufio"
	"io"
	"strings"
	"unicode"
)

// ScanState is the state carried from one line to the next by a scan.
// Open is the style of a block comment still open at the end of the previous
// line, or nil when no block comment is open.
type ScanState struct {
	Open *CommentStyle
}

// InBlock reports whether a block comment is open.
func (s ScanState) InBlock() bool {
	return s.Open != nil
}

// ScanLine classifies one physical line given the state left by the previous
// line, and returns the fragments of the line in order together with the
// state for the next line.
//
// Styles are tried in the given order and the first one that matches wins,
// so list `///` before `//` if the distinction matters. Blank lines always
// produce a single unknown fragment, even inside a block comment.
//
// The only error is an EINTERNAL invariant violation; the caller must stop
// the scan when it happens.
func ScanLine(state ScanState, lineNumber int, line string, styles []*CommentStyle) ([]Fragment, ScanState, error) {
	if strings.TrimSpace(line) == "" {
		return []Fragment{{
			LineNumber:  lineNumber,
			Kind:        KindUnknown,
			Composition: CompositionUnknown,
			Text:        line,
		}}, state, nil
	}

	var fragments []Fragment
	rest := line
	from := 0 // offset in rest where an end token may start

	for rest != "" {
		if state.InBlock() {
			f, n, next, err := continueBlock(state, rest, from)
			if err != nil {
				return nil, state, err
			}
			fragments = append(fragments, f)
			rest, from, state = rest[n:], 0, next
			continue
		}

		style, at, token := matchStyle(rest, styles)
		if style == nil {
			fragments = append(fragments, Fragment{Kind: KindCode, Text: rest})
			break
		}

		if at > 0 {
			fragments = append(fragments, Fragment{Kind: KindCode, Text: rest[:at]})
			rest, token = rest[at:], token-at
		}

		if !style.IsBlock() {
			fragments = append(fragments, Fragment{Kind: KindComment, Text: rest, Style: style})
			break
		}

		// The end token is searched for after the opening token so that
		// styles whose start and end are identical do not close at once.
		state = ScanState{Open: style}
		from = token + len(style.start)
	}

	var composition Composition
	for _, f := range fragments {
		composition = composition.With(f.Kind)
	}
	for i := range fragments {
		fragments[i].LineNumber = lineNumber
		fragments[i].Composition = composition
	}

	return fragments, state, nil
}

// continueBlock consumes text belonging to the open block comment. It returns
// the comment fragment, the number of bytes consumed and the next state.
func continueBlock(state ScanState, text string, from int) (Fragment, int, ScanState, error) {
	style := state.Open
	if style == nil {
		return Fragment{}, 0, state, Errorf(EINTERNAL, "block comment continuation without an open block")
	}

	i := strings.Index(text[from:], style.end)
	if i < 0 {
		return Fragment{Kind: KindComment, Text: text, Style: style}, len(text), state, nil
	}

	n := from + i + len(style.end)
	return Fragment{Kind: KindComment, Text: text[:n], Style: style}, n, ScanState{}, nil
}

// matchStyle finds the first style that opens a comment in text. It returns
// the style, the offset where the comment fragment begins and the offset of
// the start token itself. The two offsets differ only when the comment
// opens the text after leading whitespace.
func matchStyle(text string, styles []*CommentStyle) (style *CommentStyle, at, token int) {
	for _, s := range styles {
		if i, ok := s.opens(text); ok {
			return s, 0, i
		}
		if i := s.indexOutsideQuotes(text); i >= 0 {
			return s, i, i
		}
	}
	return nil, -1, -1
}

// opens reports whether text starts with the style's start token after
// optional leading whitespace, and where the token begins.
func (s *CommentStyle) opens(text string) (int, bool) {
	trimmed := strings.TrimLeftFunc(text, unicode.IsSpace)
	if !strings.HasPrefix(trimmed, s.start) {
		return 0, false
	}
	return len(text) - len(trimmed), true
}

// indexOutsideQuotes returns the offset of the first start token in text that
// is preceded by an even number of unescaped double quotes, or -1.
//
// This approximates "not inside a string literal". It knows nothing about
// single quotes, raw strings or regular expression literals.
func (s *CommentStyle) indexOutsideQuotes(text string) int {
	quoted := false
	for i := 0; i < len(text); i++ {
		if !quoted && strings.HasPrefix(text[i:], s.start) {
			return i
		}
		if text[i] == '"' && !escaped(text, i) {
			quoted = !quoted
		}
	}
	return -1
}

// escaped reports whether the byte at i is preceded by an odd number of
// backslashes.
func escaped(text string, i int) bool {
	n := 0
	for j := i - 1; j >= 0 && text[j] == '\\'; j-- {
		n++
	}
	return n%2 == 1
}

// Scanner reads lines from a reader and produces their fragments one at a
// time. It is forward-only: create a new Scanner for every input.
//
//	s := litdoc.NewScanner(r, lang.Styles)
//	for s.Scan() {
//		f := s.Fragment()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
type Scanner struct {
	r      *bufio.Reader
	styles []*CommentStyle

	state   ScanState
	line    int
	pending []Fragment
	current Fragment

	err  error
	done bool
}

// NewScanner returns a Scanner reading lines from r and classifying them with
// styles in priority order.
func NewScanner(r io.Reader, styles []*CommentStyle) *Scanner {
	return &Scanner{
		r:      bufio.NewReader(r),
		styles: styles,
	}
}

// Scan advances to the next fragment, which is then available through
// Fragment. It returns false when the input is exhausted or an error stopped
// the scan.
func (s *Scanner) Scan() bool {
	for len(s.pending) == 0 {
		if s.done {
			return false
		}

		line, ok := s.readLine()
		if !ok {
			s.done = true
			return false
		}
		s.line++

		fragments, next, err := ScanLine(s.state, s.line, line, s.styles)
		if err != nil {
			s.err = err
			s.done = true
			return false
		}
		s.state = next
		s.pending = fragments
	}

	s.current = s.pending[0]
	s.pending = s.pending[1:]
	return true
}

// Fragment returns the fragment produced by the last call to Scan.
func (s *Scanner) Fragment() Fragment {
	return s.current
}

// Err returns the first error that stopped the scan, if any.
func (s *Scanner) Err() error {
	return s.err
}

// State returns the continuation state after the last line read. A block
// comment left open at the end of input is not an error.
func (s *Scanner) State() ScanState {
	return s.state
}

// Lines returns the number of physical lines read so far.
func (s *Scanner) Lines() int {
	return s.line
}

func (s *Scanner) readLine() (string, bool) {
	line, err := s.r.ReadString('\n')
	if err != nil && err != io.EOF {
		s.err = err
		return "", false
	}
	if err == io.EOF && line == "" {
		return "", false
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, true
}

// ScanAll scans r to the end and returns every fragment.
func ScanAll(r io.Reader, styles []*CommentStyle) ([]Fragment, error) {
	var fragments []Fragment
	s := NewScanner(r, styles)
	for s.Scan() {
		fragments = append(fragments, s.Fragment())
	}
	return fragments, s.Err()
}
