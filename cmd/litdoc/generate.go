package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fwojciec/litdoc"
	"github.com/fwojciec/litdoc/generate"
)

// Run executes the generate command.
func (c *GenerateCmd) Run(deps *Dependencies) error {
	lang, err := deps.Languages.FindLanguage(c.Type)
	if err != nil {
		if litdoc.ErrorCode(err) == litdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: unknown file type %q. Use 'litdoc languages' to see supported types.\n", c.Type)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", litdoc.ErrorMessage(err))
		}
		return err
	}

	output := c.Output
	if output == "" {
		output = filepath.Join(c.Path, "docs")
	}
	if err := checkOutputDir(c.Path, output); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litdoc.ErrorMessage(err))
		return err
	}

	job := &litdoc.Job{
		BaseDir:       c.Path,
		Language:      lang,
		OutputDir:     output,
		ProjectName:   c.Name,
		IndexFilename: c.Index,
	}
	if err := job.Validate(); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", litdoc.ErrorMessage(err))
		return err
	}

	g := &generate.Generator{
		Walker:      deps.Walker,
		Renderer:    deps.Renderer,
		Highlighter: deps.Highlighter,
		Excerpter:   deps.Excerpter,
		Templates:   deps.Templates,
		Store:       deps.Pages(output),
		Cache:       deps.Cache,
		Concurrency: c.Concurrency,
	}

	progress := func(event generate.ProgressEvent) {
		switch event.Type {
		case generate.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "  Found %d %s files\n", event.Total, lang.Name)
		case generate.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Path, event.Error)
		}
	}

	result, err := g.Generate(deps.Ctx, job, progress)
	if err != nil {
		if litdoc.ErrorCode(err) == litdoc.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: %s\n", litdoc.ErrorMessage(err))
		} else {
			fmt.Fprintf(deps.Stderr, "error generating: %v\n", err)
		}
		return err
	}

	if result.Generated+result.Cached > 0 {
		fmt.Fprintf(deps.Stdout, "  %s (%s)\n",
			generate.FormatLines(result.LinesOfCode, result.LinesOfComment), generate.FormatBytes(result.Bytes))
	}
	fmt.Fprintf(deps.Stdout, "Generated %d documents (%d cached, %d failed) in %s\n",
		result.Generated+result.Cached, result.Cached, result.Failed, output)
	return nil
}

// checkOutputDir rejects output directories that would replace the sources
// on commit.
func checkOutputDir(baseDir, outputDir string) error {
	base, err := filepath.Abs(baseDir)
	if err != nil {
		return err
	}
	out, err := filepath.Abs(outputDir)
	if err != nil {
		return err
	}
	if out == base || strings.HasPrefix(base, out+string(filepath.Separator)) {
		return litdoc.Errorf(litdoc.EINVALID, "output directory %q contains the source directory", outputDir)
	}
	return nil
}
