package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/litdoc"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Languages litdoc.LanguageService

	// Cache is nil unless a cache database is configured.
	Cache litdoc.DocumentCache

	// Logger is nil unless verbose output is requested.
	Logger *slog.Logger

	// Services used by the generate command.
	Walker      litdoc.SourceWalker
	Renderer    litdoc.Renderer
	Highlighter litdoc.Highlighter
	Excerpter   litdoc.Excerpter
	Templates   litdoc.TemplateRenderer

	// Pages returns the store receiving the pages of an output directory.
	Pages func(outputDir string) litdoc.PageStore
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Languages string `help:"Language definition file replacing the built-in table" env:"LITDOC_LANGUAGES" placeholder:"FILE"`
	Cache     string `help:"SQLite database caching generated pages" env:"LITDOC_CACHE" placeholder:"FILE"`
	Verbose   bool   `short:"v" help:"Log discovery, cache and output activity to stderr"`

	Generate      GenerateCmd      `cmd:"" help:"Generate documentation for a source tree"`
	LanguagesList LanguagesListCmd `cmd:"" name:"languages" help:"List known languages"`
	CacheCmd      CacheCmd         `cmd:"" name:"cache" help:"Manage the page cache"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Path             string `short:"p" required:"" help:"Directory containing the source files"`
	Type             string `short:"t" required:"" help:"File extension of the language to document, such as cs or .go"`
	Output           string `short:"o" help:"Output directory (default: <path>/docs)"`
	Index            string `short:"i" default:"index.html" help:"Index page file name"`
	Name             string `short:"n" help:"Project name (default: base name of path)"`
	Concurrency      int    `short:"c" default:"4" help:"Concurrent file limit"`
	DocumentTemplate string `help:"Template file for document pages" placeholder:"FILE"`
	IndexTemplate    string `help:"Template file for the index page" placeholder:"FILE"`
}

// LanguagesListCmd is the "languages" subcommand.
type LanguagesListCmd struct{}

// CacheCmd groups the cache subcommands.
type CacheCmd struct {
	Clear CacheClearCmd `cmd:"" help:"Remove cached pages"`
}

// CacheClearCmd is the "cache clear" subcommand.
type CacheClearCmd struct {
	Name string `short:"n" help:"Only remove pages of this project"`
}
