package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	main "github.com/fwojciec/litdoc/cmd/litdoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newMain returns a Main that ignores settings files on the test machine.
func newMain() *main.Main {
	m := main.NewMain()
	m.ConfigPaths = nil
	return m
}

// writeSource creates a file below dir, creating parent directories.
func writeSource(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, filepath.FromSlash(name))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

const helloGo = `// Package main says hello.
package main

import "fmt"

// main prints a greeting.
func main() {
	fmt.Println("hello") // inline
}
`

func TestCLI_HelpShowsAllCommands(t *testing.T) {
	t.Parallel()

	cli := &main.CLI{}
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	parser, err := kong.New(cli,
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)

	_, _ = parser.Parse([]string{"--help"})

	helpOutput := stdout.String()
	for _, cmd := range []string{"generate", "languages", "cache"} {
		assert.Contains(t, helpOutput, cmd, "Help should mention %s command", cmd)
	}
}

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("help succeeds", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newMain().Run(context.Background(), []string{"--help"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "generate")
	})

	t.Run("no arguments prints help and fails", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newMain().Run(context.Background(), nil, stdout, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
		assert.Contains(t, stdout.String(), "generate")
	})

	t.Run("generate requires path and type", func(t *testing.T) {
		t.Parallel()

		err := newMain().Run(context.Background(), []string{"generate"}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
	})

	t.Run("languages lists the built-in table", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		err := newMain().Run(context.Background(), []string{"languages"}, stdout, &bytes.Buffer{})

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "Go  .go  //, /* */\n")
		assert.Contains(t, stdout.String(), "C#  .cs  ")
	})

	t.Run("missing language file fails", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		missing := filepath.Join(t.TempDir(), "missing.json")
		err := newMain().Run(context.Background(), []string{"languages", "--languages", missing}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "Hint:")
	})

	t.Run("cache clear without cache fails", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		err := newMain().Run(context.Background(), []string{"cache", "clear", "--cache", ""}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "no cache configured")
	})
}

func TestMain_Run_Generate(t *testing.T) {
	t.Parallel()

	t.Run("writes pages next to the sources", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeSource(t, dir, "main.go", helloGo)
		writeSource(t, dir, "internal/util.go", "package internal\n\n// Add sums.\nfunc Add(a, b int) int { return a + b }\n")
		writeSource(t, dir, "main_test.go", "package main\n")

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		err := newMain().Run(context.Background(), []string{"generate", "-p", dir, "-t", "go", "-n", "hello"}, stdout, stderr)

		require.NoError(t, err, stderr.String())
		output := filepath.Join(dir, "docs")
		assert.Contains(t, stdout.String(), "Generated 2 documents (0 cached, 0 failed) in "+output)

		page, err := os.ReadFile(filepath.Join(output, "main.html"))
		require.NoError(t, err)
		assert.Contains(t, string(page), "Package main says hello.")
		assert.Contains(t, string(page), "hello")

		index, err := os.ReadFile(filepath.Join(output, "index.html"))
		require.NoError(t, err)
		assert.Contains(t, string(index), "main.html")
		assert.Contains(t, string(index), "internal/util.html")

		assert.FileExists(t, filepath.Join(output, "internal", "util.html"))
		assert.FileExists(t, filepath.Join(output, "litdoc.css"))
		assert.FileExists(t, filepath.Join(output, "highlight.css"))
		assert.NoFileExists(t, filepath.Join(output, "main_test.html"))
		assert.NoDirExists(t, output+".tmp")
	})

	t.Run("reuses cached pages on the second run", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeSource(t, dir, "main.go", helloGo)
		cache := filepath.Join(t.TempDir(), "cache.db")
		args := []string{"generate", "-p", dir, "-t", ".go", "--cache", cache}

		require.NoError(t, newMain().Run(context.Background(), args, &bytes.Buffer{}, &bytes.Buffer{}))

		stdout := &bytes.Buffer{}
		require.NoError(t, newMain().Run(context.Background(), args, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "Generated 1 documents (1 cached, 0 failed)")

		stdout.Reset()
		require.NoError(t, newMain().Run(context.Background(), []string{"cache", "clear", "--cache", cache}, stdout, &bytes.Buffer{}))
		assert.Contains(t, stdout.String(), "Removed 1 cached documents")
	})

	t.Run("verbose logs activity to stderr", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		writeSource(t, dir, "main.go", helloGo)

		stderr := &bytes.Buffer{}
		err := newMain().Run(context.Background(), []string{"generate", "-p", dir, "-t", "go", "-v"}, &bytes.Buffer{}, stderr)

		require.NoError(t, err)
		assert.Contains(t, stderr.String(), "source discovery")
		assert.Contains(t, stderr.String(), "pages committed")
	})

	t.Run("unknown type prints a hint", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		err := newMain().Run(context.Background(), []string{"generate", "-p", t.TempDir(), "-t", "zzz"}, &bytes.Buffer{}, stderr)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "litdoc languages")
	})

	t.Run("missing document template fails", func(t *testing.T) {
		t.Parallel()

		missing := filepath.Join(t.TempDir(), "page.html")
		err := newMain().Run(context.Background(), []string{"generate", "-p", t.TempDir(), "-t", "go", "--document-template", missing}, &bytes.Buffer{}, &bytes.Buffer{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "templates")
	})
}
