// Package json loads language definitions from JSON.
package json

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/fwojciec/litdoc"
)

//go:embed languages.json
var defaultLanguages []byte

// languageEntry is the on-disk form of a litdoc.Language.
type languageEntry struct {
	Name                  string             `json:"name"`
	Extension             string             `json:"extension"`
	Lexer                 string             `json:"lexer"`
	Comments              []commentEntry     `json:"comments"`
	MarkdownMaps          []markdownMapEntry `json:"markdownMaps"`
	IgnoreFilenameEndings []string           `json:"ignoreFilenameEndings"`
	IgnoreSubDirectories  []string           `json:"ignoreSubDirectories"`
}

type commentEntry struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	CollapseRepeats bool   `json:"collapseRepeats"`
	TrimChars       string `json:"trimChars"`
}

type markdownMapEntry struct {
	Find    string `json:"find"`
	Replace string `json:"replace"`
}

// Ensure Registry implements litdoc.LanguageService at compile time.
var _ litdoc.LanguageService = (*Registry)(nil)

// Registry is a read-only set of languages keyed by file extension.
// It is safe for concurrent use.
type Registry struct {
	byExtension map[string]*litdoc.Language
	languages   []*litdoc.Language
}

// DefaultLanguages returns the built-in language table.
func DefaultLanguages() (*Registry, error) {
	return LoadLanguages(strings.NewReader(string(defaultLanguages)))
}

// LoadLanguagesFile reads a language table from a JSON file.
func LoadLanguagesFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return nil, litdoc.Errorf(litdoc.ENOTFOUND, "language file %q not found", path)
	} else if err != nil {
		return nil, err
	}
	defer f.Close()

	return LoadLanguages(f)
}

// LoadLanguages reads a JSON array of language entries from r. Every comment
// style and markdown map is compiled here, so malformed entries are reported
// as EINVALID before any file is scanned.
func LoadLanguages(r io.Reader) (*Registry, error) {
	var entries []languageEntry
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, litdoc.Errorf(litdoc.EINVALID, "decode languages: %v", err)
	}

	reg := &Registry{byExtension: make(map[string]*litdoc.Language, len(entries))}
	for i, e := range entries {
		lang, err := e.language()
		if err != nil {
			return nil, fmt.Errorf("language %d: %w", i, err)
		}
		if _, ok := reg.byExtension[lang.Extension]; ok {
			return nil, litdoc.Errorf(litdoc.EINVALID, "duplicate language extension %q", lang.Extension)
		}
		reg.byExtension[lang.Extension] = lang
		reg.languages = append(reg.languages, lang)
	}

	sort.Slice(reg.languages, func(i, j int) bool {
		return reg.languages[i].Name < reg.languages[j].Name
	})
	return reg, nil
}

func (e languageEntry) language() (*litdoc.Language, error) {
	lang := &litdoc.Language{
		Name:                  e.Name,
		Extension:             litdoc.NormalizeExtension(e.Extension),
		Lexer:                 e.Lexer,
		IgnoreFilenameEndings: e.IgnoreFilenameEndings,
		IgnoreSubDirectories:  e.IgnoreSubDirectories,
	}

	for _, c := range e.Comments {
		style, err := litdoc.NewCommentStyle(c.Start, c.End, c.CollapseRepeats, c.TrimChars)
		if err != nil {
			return nil, err
		}
		lang.Styles = append(lang.Styles, style)
	}

	for _, m := range e.MarkdownMaps {
		find, err := regexp.Compile(m.Find)
		if err != nil {
			return nil, litdoc.Errorf(litdoc.EINVALID, "language %q markdown map %q: %v", e.Name, m.Find, err)
		}
		lang.MarkdownMaps = append(lang.MarkdownMaps, litdoc.MarkdownMap{Find: find, Replace: m.Replace})
	}

	if err := lang.Validate(); err != nil {
		return nil, err
	}
	return lang, nil
}

// FindLanguage returns the language registered for ext.
func (r *Registry) FindLanguage(ext string) (*litdoc.Language, error) {
	lang, ok := r.byExtension[litdoc.NormalizeExtension(ext)]
	if !ok {
		return nil, litdoc.Errorf(litdoc.ENOTFOUND, "no language for extension %q", ext)
	}
	return lang, nil
}

// Languages returns all languages sorted by name.
func (r *Registry) Languages() []*litdoc.Language {
	languages := make([]*litdoc.Language, len(r.languages))
	copy(languages, r.languages)
	return languages
}
