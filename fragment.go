package litdoc

import "strings"

// Kind classifies a fragment of a source line.
type Kind int

// Fragment kinds.
const (
	KindUnknown Kind = iota
	KindCode
	KindComment
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindCode:
		return "code"
	case KindComment:
		return "comment"
	default:
		return "unknown"
	}
}

// Composition is the set of fragment kinds found on one physical line.
// The zero value means the line contained neither code nor comments.
type Composition uint8

// Composition values. CompositionMixed is the union of code and comment.
const (
	CompositionUnknown Composition = 0
	CompositionCode    Composition = 1 << 0
	CompositionComment Composition = 1 << 1
	CompositionMixed               = CompositionCode | CompositionComment
)

// Has reports whether every kind in other is present in c.
func (c Composition) Has(other Composition) bool {
	return other != 0 && c&other == other
}

// With returns the composition extended by the given fragment kind.
// Unknown fragments do not change the composition.
func (c Composition) With(k Kind) Composition {
	switch k {
	case KindCode:
		return c | CompositionCode
	case KindComment:
		return c | CompositionComment
	default:
		return c
	}
}

// String returns "unknown", "code", "comment" or "mixed".
func (c Composition) String() string {
	switch c {
	case CompositionCode:
		return "code"
	case CompositionComment:
		return "comment"
	case CompositionMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Fragment is one classified slice of a physical source line.
//
// Text is the exact substring of the line, delimiters included, so that
// joining the text of every fragment of a line reproduces the line.
// Composition describes the whole line and is identical for all of its
// fragments. Style is the matching comment style for comment fragments and
// nil otherwise.
type Fragment struct {
	LineNumber  int
	Kind        Kind
	Composition Composition
	Text        string
	Style       *CommentStyle
}

// JoinFragments concatenates the text of fragments in order.
func JoinFragments(fragments []Fragment) string {
	var b strings.Builder
	for _, f := range fragments {
		b.WriteString(f.Text)
	}
	return b.String()
}
