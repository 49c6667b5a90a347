package litdoc

import (
	"regexp"
	"strings"
)

// Language describes how to document source files of one language.
type Language struct {
	// Name is the friendly name of the language.
	Name string `json:"name"`

	// Extension is the file extension, normalized without the leading dot.
	Extension string `json:"extension"`

	// Lexer names the syntax highlighter lexer for code sections.
	// Falls back to Name when empty.
	Lexer string `json:"lexer"`

	// Styles are the comment styles of the language in priority order.
	Styles []*CommentStyle `json:"-"`

	// MarkdownMaps rewrite stripped comment text into Markdown, in order.
	MarkdownMaps []MarkdownMap `json:"-"`

	// IgnoreFilenameEndings lists file name suffixes to skip.
	IgnoreFilenameEndings []string `json:"ignoreFilenameEndings"`

	// IgnoreSubDirectories lists directories, relative to the job base
	// directory, to skip.
	IgnoreSubDirectories []string `json:"ignoreSubDirectories"`
}

// Validate returns an error if the language contains invalid fields.
func (l *Language) Validate() error {
	if l.Name == "" {
		return Errorf(EINVALID, "language name required")
	}
	if NormalizeExtension(l.Extension) == "" {
		return Errorf(EINVALID, "language %q extension required", l.Name)
	}
	if len(l.Styles) == 0 {
		return Errorf(EINVALID, "language %q requires at least one comment style", l.Name)
	}
	for _, s := range l.Styles {
		if s == nil {
			return Errorf(EINVALID, "language %q has an empty comment style", l.Name)
		}
	}
	return nil
}

// LexerName returns the highlighter lexer for the language.
func (l *Language) LexerName() string {
	if l.Lexer != "" {
		return l.Lexer
	}
	return l.Name
}

// NormalizeExtension strips a single leading dot and lower-cases ext.
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MarkdownMap is a regular expression rewrite applied to comment text, used
// to turn markup such as XML documentation tags into Markdown.
type MarkdownMap struct {
	Find    *regexp.Regexp
	Replace string
}

// Apply replaces every match of Find in text. Replace may reference groups
// with ${1} or ${name}.
func (m MarkdownMap) Apply(text string) string {
	if m.Find == nil {
		return text
	}
	return m.Find.ReplaceAllString(text, m.Replace)
}

// ApplyMarkdownMaps applies maps to text in order.
func ApplyMarkdownMaps(maps []MarkdownMap, text string) string {
	for _, m := range maps {
		text = m.Apply(text)
	}
	return text
}

// LanguageService provides access to the configured languages.
type LanguageService interface {
	// FindLanguage returns the language for a file extension, with or
	// without the leading dot. Returns ENOTFOUND for unknown extensions.
	FindLanguage(ext string) (*Language, error)

	// Languages returns all languages sorted by name.
	Languages() []*Language
}
