package json_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/litdoc"
	"github.com/fwojciec/litdoc/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLanguages(t *testing.T) {
	t.Parallel()

	reg, err := json.DefaultLanguages()
	require.NoError(t, err)

	t.Run("covers the common languages", func(t *testing.T) {
		t.Parallel()

		for _, ext := range []string{
			"go", "c", "cpp", "cs", "java", "js", "ts", "rs", "swift", "kt",
			"scala", "php", "py", "rb", "sh", "sql", "lua", "hs", "vb", "coffee",
		} {
			lang, err := reg.FindLanguage(ext)
			require.NoError(t, err, "extension %q", ext)
			assert.NotEmpty(t, lang.Styles, "extension %q", ext)
		}
	})

	t.Run("languages are sorted by name", func(t *testing.T) {
		t.Parallel()

		languages := reg.Languages()
		require.NotEmpty(t, languages)
		for i := 1; i < len(languages); i++ {
			assert.Less(t, languages[i-1].Name, languages[i].Name)
		}
	})

	t.Run("extension lookup ignores dot and case", func(t *testing.T) {
		t.Parallel()

		lang, err := reg.FindLanguage(".CS")

		require.NoError(t, err)
		assert.Equal(t, "C#", lang.Name)
		assert.Equal(t, "csharp", lang.LexerName())
	})

	t.Run("unknown extension", func(t *testing.T) {
		t.Parallel()

		_, err := reg.FindLanguage("cobol")

		assert.Equal(t, litdoc.ENOTFOUND, litdoc.ErrorCode(err))
	})

	t.Run("csharp doc comments become markdown", func(t *testing.T) {
		t.Parallel()

		lang, err := reg.FindLanguage("cs")
		require.NoError(t, err)

		src := "/// <summary>\n/// Uses <c>Run</c>.\n/// </summary>\n/// <param name=\"x\">the input</param>\nvoid M(int x) {}\n"
		sections, _, err := litdoc.BuildSections(context.Background(), strings.NewReader(src), lang)

		require.NoError(t, err)
		require.Len(t, sections, 1)
		assert.Equal(t, " \n Uses `Run`.\n \n **argument** *x*: the input\n", sections[0].Docs)
	})

	t.Run("python docstrings are comments", func(t *testing.T) {
		t.Parallel()

		lang, err := reg.FindLanguage("py")
		require.NoError(t, err)

		src := "def f():\n    \"\"\"Return one.\"\"\"\n    return 1\n"
		sections, stats, err := litdoc.BuildSections(context.Background(), strings.NewReader(src), lang)

		require.NoError(t, err)
		require.Len(t, sections, 2)
		assert.Equal(t, "Return one.\n", sections[1].Docs)
		assert.Equal(t, 1, stats.LinesOfComment)
	})
}

func TestLoadLanguages(t *testing.T) {
	t.Parallel()

	t.Run("builds styles and maps in order", func(t *testing.T) {
		t.Parallel()

		reg, err := json.LoadLanguages(strings.NewReader(`[
			{
				"name": "Toy",
				"extension": ".TOY",
				"comments": [
					{"start": ";;", "collapseRepeats": true},
					{"start": "(*", "end": "*)", "trimChars": "*"}
				],
				"markdownMaps": [{"find": "TODO", "replace": "**TODO**"}],
				"ignoreFilenameEndings": [".gen.toy"],
				"ignoreSubDirectories": ["out"]
			}
		]`))
		require.NoError(t, err)

		lang, err := reg.FindLanguage("toy")
		require.NoError(t, err)

		assert.Equal(t, "toy", lang.Extension)
		assert.Equal(t, "Toy", lang.LexerName())
		require.Len(t, lang.Styles, 2)
		assert.Equal(t, ";;", lang.Styles[0].Start())
		assert.True(t, lang.Styles[0].CollapseRepeats())
		assert.Equal(t, "*)", lang.Styles[1].End())
		assert.Equal(t, "*", lang.Styles[1].TrimChars())
		assert.Equal(t, " **TODO** later", litdoc.ApplyMarkdownMaps(lang.MarkdownMaps, " TODO later"))
		assert.Equal(t, []string{".gen.toy"}, lang.IgnoreFilenameEndings)
		assert.Equal(t, []string{"out"}, lang.IgnoreSubDirectories)
	})

	tests := []struct {
		name  string
		input string
	}{
		{name: "malformed json", input: `[{"name": "x"`},
		{name: "missing name", input: `[{"extension": "x", "comments": [{"start": "#"}]}]`},
		{name: "missing extension", input: `[{"name": "X", "comments": [{"start": "#"}]}]`},
		{name: "no comments", input: `[{"name": "X", "extension": "x"}]`},
		{name: "empty comment start", input: `[{"name": "X", "extension": "x", "comments": [{"start": ""}]}]`},
		{name: "bad regex", input: `[{"name": "X", "extension": "x", "comments": [{"start": "#"}], "markdownMaps": [{"find": "(", "replace": ""}]}]`},
		{name: "duplicate extension", input: `[
			{"name": "A", "extension": "x", "comments": [{"start": "#"}]},
			{"name": "B", "extension": ".X", "comments": [{"start": "//"}]}
		]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := json.LoadLanguages(strings.NewReader(tt.input))

			require.Error(t, err)
			assert.Equal(t, litdoc.EINVALID, litdoc.ErrorCode(err))
		})
	}
}

func TestLoadLanguagesFile(t *testing.T) {
	t.Parallel()

	t.Run("reads a file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "languages.json")
		require.NoError(t, os.WriteFile(path, []byte(`[{"name": "Shell", "extension": "sh", "comments": [{"start": "#"}]}]`), 0644))

		reg, err := json.LoadLanguagesFile(path)

		require.NoError(t, err)
		assert.Len(t, reg.Languages(), 1)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := json.LoadLanguagesFile(filepath.Join(t.TempDir(), "nope.json"))

		assert.Equal(t, litdoc.ENOTFOUND, litdoc.ErrorCode(err))
	})
}
