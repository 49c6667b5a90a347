package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/litdoc"
	"github.com/fwojciec/litdoc/chroma"
	"github.com/fwojciec/litdoc/fs"
	"github.com/fwojciec/litdoc/goldmark"
	"github.com/fwojciec/litdoc/goquery"
	"github.com/fwojciec/litdoc/html"
	"github.com/fwojciec/litdoc/json"
	litslog "github.com/fwojciec/litdoc/slog"
	"github.com/fwojciec/litdoc/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Settings files read for flag defaults. Missing files are skipped.
	ConfigPaths []string

	// SQLite database holding the page cache, opened only when configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		ConfigPaths: []string{"./litdoc.json", "~/.config/litdoc/config.json"},
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("litdoc"),
		kong.Description("Generate literate documentation pages from commented source code."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Configuration(kong.JSON, m.ConfigPaths...),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'litdoc --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	languages, err := loadLanguages(cli.Languages)
	if err != nil {
		fmt.Fprintf(stderr, "Hint: Check the file set with --languages or LITDOC_LANGUAGES\n")
		return fmt.Errorf("failed to load languages: %w", err)
	}
	deps.Languages = languages

	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}

	if cli.Cache != "" {
		m.DB = sqlite.NewDB(cli.Cache)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set LITDOC_CACHE to use a different cache path\n")
			return fmt.Errorf("failed to open cache at %q: %w", cli.Cache, err)
		}
		defer m.Close()

		var cache litdoc.DocumentCache = sqlite.NewDocumentCache(m.DB)
		if deps.Logger != nil {
			cache = litslog.NewLoggingDocumentCache(cache, deps.Logger)
		}
		deps.Cache = cache
	}

	if strings.HasPrefix(kongCtx.Command(), "generate") {
		templates, err := html.NewTemplatesFromFiles(cli.Generate.DocumentTemplate, cli.Generate.IndexTemplate)
		if err != nil {
			return fmt.Errorf("failed to load templates: %w", err)
		}

		var walker litdoc.SourceWalker = fs.NewWalker()
		pages := func(outputDir string) litdoc.PageStore {
			return fs.NewFileStoreForDir(outputDir)
		}
		if logger := deps.Logger; logger != nil {
			walker = litslog.NewLoggingWalker(walker, logger)
			pages = func(outputDir string) litdoc.PageStore {
				return litslog.NewLoggingPageStore(fs.NewFileStoreForDir(outputDir), logger)
			}
		}

		deps.Walker = walker
		deps.Renderer = goldmark.NewRenderer()
		deps.Highlighter = chroma.NewHighlighter(chroma.DefaultStyle)
		deps.Excerpter = goquery.NewExcerpter()
		deps.Templates = templates
		deps.Pages = pages
	}

	return kongCtx.Run(deps)
}

// loadLanguages returns the language table in file, or the built-in table
// when file is empty.
func loadLanguages(file string) (*json.Registry, error) {
	if file == "" {
		return json.DefaultLanguages()
	}
	return json.LoadLanguagesFile(file)
}
