package fs

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fwojciec/litdoc"
)

// Ensure Walker implements litdoc.SourceWalker at compile time.
var _ litdoc.SourceWalker = (*Walker)(nil)

// Walker discovers source files on the local filesystem.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// Candidates walks the job base directory for files with the language
// extension. Hidden directories, the output directory with its staging
// directory and the ignore rules of the language are skipped.
func (w *Walker) Candidates(ctx context.Context, job *litdoc.Job) ([]string, error) {
	info, err := os.Stat(job.BaseDir)
	if os.IsNotExist(err) {
		return nil, litdoc.Errorf(litdoc.ENOTFOUND, "source directory %q not found", job.BaseDir)
	} else if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, litdoc.Errorf(litdoc.EINVALID, "source path %q is not a directory", job.BaseDir)
	}

	root, err := filepath.Abs(job.BaseDir)
	if err != nil {
		return nil, err
	}

	skipDirs := map[string]bool{}
	if job.OutputDir != "" {
		out, err := filepath.Abs(job.OutputDir)
		if err != nil {
			return nil, err
		}
		skipDirs[out] = true
		skipDirs[out+StagingSuffix] = true
	}

	ext := "." + litdoc.NormalizeExtension(job.Language.Extension)
	ignored := ignoredDirs(job.Language.IgnoreSubDirectories)

	var candidates []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if d.IsDir() {
			if p == root {
				return nil
			}
			if strings.HasPrefix(d.Name(), ".") || skipDirs[p] || isIgnoredDir(rel, ignored) {
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			return nil
		}
		name := strings.ToLower(d.Name())
		if !strings.HasSuffix(name, ext) {
			return nil
		}
		if hasIgnoredEnding(name, job.Language.IgnoreFilenameEndings) {
			return nil
		}

		candidates = append(candidates, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(candidates)
	return candidates, nil
}

func ignoredDirs(dirs []string) []string {
	ignored := make([]string, 0, len(dirs))
	for _, d := range dirs {
		d = strings.Trim(filepath.ToSlash(filepath.Clean(d)), "/")
		if d == "" || d == "." {
			continue
		}
		ignored = append(ignored, strings.ToLower(d))
	}
	return ignored
}

// isIgnoredDir reports whether rel is, or is below, an ignored directory.
func isIgnoredDir(rel string, ignored []string) bool {
	rel = strings.ToLower(rel)
	for _, d := range ignored {
		if rel == d || strings.HasPrefix(rel, d+"/") {
			return true
		}
	}
	return false
}

func hasIgnoredEnding(name string, endings []string) bool {
	for _, e := range endings {
		if e != "" && strings.HasSuffix(name, strings.ToLower(e)) {
			return true
		}
	}
	return false
}
