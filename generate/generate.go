// Package generate provides documentation generation orchestration.
// It coordinates source discovery, sectioning, rendering, caching and
// storage of documentation pages.
package generate

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/litdoc"
	"github.com/fwojciec/litdoc/fs"
	"golang.org/x/sync/errgroup"
)

// Output files written next to the index page.
const (
	StylesheetFile = "litdoc.css"
	HighlightFile  = "highlight.css"
)

// Defaults for Generator fields left zero.
const (
	DefaultConcurrency   = 4
	DefaultExcerptLength = 200
)

// Generator orchestrates the documentation of a job.
type Generator struct {
	Walker      litdoc.SourceWalker
	Renderer    litdoc.Renderer
	Highlighter litdoc.Highlighter
	Excerpter   litdoc.Excerpter
	Templates   litdoc.TemplateRenderer
	Store       litdoc.PageStore

	// Cache is optional. When set, unchanged files reuse their page.
	Cache litdoc.DocumentCache

	Concurrency   int
	ExcerptLength int
}

// Result holds the outcome of a generate operation.
type Result struct {
	Generated      int
	Cached         int
	Failed         int
	LinesOfCode    int
	LinesOfComment int

	// Bytes is the size of the document pages written.
	Bytes int
}

// ProgressEvent reports progress during a generate operation.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressCached
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting generate progress.
type ProgressFunc func(event ProgressEvent)

// fileResult holds the outcome of processing a single source file.
type fileResult struct {
	position int
	path     string
	page     *litdoc.Page
	summary  litdoc.DocumentSummary
	cached   bool
	err      error
}

// Generate documents every source file of job and writes the pages, the
// index and the stylesheets to the store. Per-file failures are reported
// through progress and counted in the result; they do not stop other files.
// The store is committed only if at least one file succeeded.
func (g *Generator) Generate(ctx context.Context, job *litdoc.Job, progress ProgressFunc) (*Result, error) {
	if err := job.Validate(); err != nil {
		return nil, err
	}

	paths, err := g.Walker.Candidates(ctx, job)
	if err != nil {
		return nil, fmt.Errorf("source discovery: %w", err)
	}
	if len(paths) == 0 {
		return &Result{}, g.Store.Abort()
	}

	// Set up concurrency
	concurrency := g.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	links := make([]litdoc.DocumentLink, len(paths))
	for i, p := range paths {
		links[i] = litdoc.DocumentLink{Title: p, URL: fs.DocumentPath(p)}
	}
	layout := layoutKey(job, paths)

	// Channel for collecting results
	resultCh := make(chan fileResult, len(paths))

	// Progress tracking
	var completed atomic.Int64
	total := len(paths)

	// Notify start
	if progress != nil {
		progress(ProgressEvent{
			Type:  ProgressStarted,
			Total: total,
		})
	}

	// Start workers
	eg, gctx := errgroup.WithContext(ctx)
	eg.SetLimit(concurrency)

	go func() {
		for i, p := range paths {
			eg.Go(func() error {
				resultCh <- g.processFile(gctx, job, i, p, links, layout)
				return nil
			})
		}
		_ = eg.Wait()
		close(resultCh)
	}()

	// Save pages in the collecting goroutine, report progress as results arrive
	var result Result
	summaries := make([]*litdoc.DocumentSummary, len(paths))
	for r := range resultCh {
		completed.Add(1)

		if r.err == nil {
			if err := g.Store.Save(ctx, r.page); err != nil {
				r.err = fmt.Errorf("save %s: %w", r.page.Path, err)
			}
		}

		event := ProgressEvent{
			Completed: int(completed.Load()),
			Total:     total,
			Path:      r.path,
			Error:     r.err,
		}
		switch {
		case r.err != nil:
			result.Failed++
			event.Type = ProgressFailed
		case r.cached:
			result.Cached++
			event.Type = ProgressCached
		default:
			result.Generated++
			event.Type = ProgressCompleted
		}
		if r.err == nil {
			summary := r.summary
			summaries[r.position] = &summary
			result.LinesOfCode += summary.LinesOfCode
			result.LinesOfComment += summary.LinesOfComment
			result.Bytes += len(r.page.Content)
		}
		if progress != nil {
			progress(event)
		}
	}

	if err := ctx.Err(); err != nil {
		_ = g.Store.Abort()
		return nil, err
	}

	if result.Generated+result.Cached == 0 {
		if err := g.Store.Abort(); err != nil {
			return nil, err
		}
		g.finish(progress, total)
		return &result, nil
	}

	if err := g.writeIndex(ctx, job, summaries); err != nil {
		_ = g.Store.Abort()
		return nil, err
	}
	if err := g.Store.Commit(); err != nil {
		_ = g.Store.Abort()
		return nil, fmt.Errorf("commit pages: %w", err)
	}

	g.finish(progress, total)
	return &result, nil
}

func (g *Generator) finish(progress ProgressFunc, total int) {
	// Notify finished
	if progress != nil {
		progress(ProgressEvent{
			Type:      ProgressFinished,
			Completed: total,
			Total:     total,
		})
	}
}

// processFile reads, sections, renders and caches a single source file.
func (g *Generator) processFile(ctx context.Context, job *litdoc.Job, position int, sourcePath string, links []litdoc.DocumentLink, layout string) fileResult {
	result := fileResult{
		position: position,
		path:     sourcePath,
	}
	pagePath := fs.DocumentPath(sourcePath)

	content, err := os.ReadFile(filepath.Join(job.BaseDir, filepath.FromSlash(sourcePath)))
	if err != nil {
		result.err = err
		return result
	}
	hash := ComputeHash(layout + "\x00" + string(content))

	if g.Cache != nil {
		doc, err := g.Cache.FindCachedDocument(ctx, job.ProjectName, sourcePath)
		if err == nil && doc.Matches(job.Language.Name, hash) {
			result.page = &litdoc.Page{Path: pagePath, Content: doc.HTML}
			result.summary = doc.Summary
			result.cached = true
			return result
		}
	}

	sections, stats, err := litdoc.BuildSections(ctx, bytes.NewReader(content), job.Language)
	if err != nil {
		result.err = err
		return result
	}

	lexer := job.Language.LexerName()
	for _, s := range sections {
		if s.DocsHTML, err = g.Renderer.Render(s.Docs); err != nil {
			result.err = fmt.Errorf("render docs: %w", err)
			return result
		}
		if s.CodeHTML, err = g.Highlighter.Highlight(lexer, s.Code); err != nil {
			result.err = fmt.Errorf("highlight code: %w", err)
			return result
		}
	}

	summary := litdoc.DocumentSummary{
		Title:          path.Base(sourcePath),
		SourcePath:     sourcePath,
		RelativeURL:    pagePath,
		LinesOfCode:    stats.LinesOfCode,
		LinesOfComment: stats.LinesOfComment,
	}
	if len(sections) > 0 {
		if summary.DocsExcerpt, summary.CodeExcerpt, err = g.excerpts(sections[0]); err != nil {
			result.err = err
			return result
		}
	}

	var buf bytes.Buffer
	if err := g.Templates.RenderDocument(&buf, &litdoc.DocumentPage{
		Title:       summary.Title,
		ProjectName: job.ProjectName,
		SourcePath:  sourcePath,
		RootPath:    litdoc.RootPath(pagePath),
		IndexFile:   job.IndexFilename,
		Sections:    sections,
		Documents:   links,
	}); err != nil {
		result.err = err
		return result
	}

	result.page = &litdoc.Page{Path: pagePath, Content: buf.Bytes()}
	result.summary = summary

	if g.Cache != nil {
		// A failed cache write only costs a regeneration next time.
		_ = g.Cache.SaveCachedDocument(ctx, &litdoc.CachedDocument{
			Project:     job.ProjectName,
			SourcePath:  sourcePath,
			Language:    job.Language.Name,
			ContentHash: hash,
			Summary:     summary,
			HTML:        result.page.Content,
			GeneratedAt: time.Now().UTC(),
		})
	}

	return result
}

// excerpts returns the plain-text excerpts of the top section of a file.
func (g *Generator) excerpts(top *litdoc.Section) (docs, code string, err error) {
	n := g.ExcerptLength
	if n <= 0 {
		n = DefaultExcerptLength
	}
	if docs, err = g.Excerpter.Excerpt(top.DocsHTML, n); err != nil {
		return "", "", fmt.Errorf("excerpt docs: %w", err)
	}
	if code, err = g.Excerpter.Excerpt(top.CodeHTML, n); err != nil {
		return "", "", fmt.Errorf("excerpt code: %w", err)
	}
	return docs, code, nil
}

// writeIndex saves the index page and the stylesheets.
func (g *Generator) writeIndex(ctx context.Context, job *litdoc.Job, summaries []*litdoc.DocumentSummary) error {
	documents := make([]*litdoc.DocumentSummary, 0, len(summaries))
	for _, s := range summaries {
		if s != nil {
			documents = append(documents, s)
		}
	}

	var buf bytes.Buffer
	if err := g.Templates.RenderIndex(&buf, &litdoc.IndexPage{
		Title:       job.ProjectName,
		ProjectName: job.ProjectName,
		IndexFile:   job.IndexFilename,
		Documents:   documents,
	}); err != nil {
		return err
	}

	highlight, err := g.Highlighter.Stylesheet()
	if err != nil {
		return fmt.Errorf("highlight stylesheet: %w", err)
	}

	pages := []*litdoc.Page{
		{Path: job.IndexFilename, Content: buf.Bytes()},
		{Path: StylesheetFile, Content: []byte(g.Templates.Stylesheet())},
		{Path: HighlightFile, Content: []byte(highlight)},
	}
	for _, p := range pages {
		if err := g.Store.Save(ctx, p); err != nil {
			return fmt.Errorf("save %s: %w", p.Path, err)
		}
	}
	return nil
}

// layoutKey identifies the inputs every page of a job shares, so a cached
// page is not reused after files are added, removed or renamed.
func layoutKey(job *litdoc.Job, paths []string) string {
	return job.ProjectName + "\x00" + job.IndexFilename + "\x00" + strings.Join(paths, "\n")
}
