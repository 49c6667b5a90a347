package litdoc

import (
	"context"
	"path/filepath"
)

// DefaultIndexFilename is the name of the generated index page.
const DefaultIndexFilename = "index.html"

// Job is a group of source files of one language documented together.
type Job struct {
	// BaseDir is the directory searched for source files.
	BaseDir string

	// Language selects candidate files and how they are parsed.
	Language *Language

	// OutputDir is the directory receiving the generated pages.
	OutputDir string

	// ProjectName titles the generated pages. Defaults to the base
	// directory name.
	ProjectName string

	// IndexFilename names the index page. Defaults to DefaultIndexFilename.
	IndexFilename string
}

// Validate returns an error if the job contains invalid fields. Defaults are
// filled in for the optional fields.
func (j *Job) Validate() error {
	if j.BaseDir == "" {
		return Errorf(EINVALID, "job base directory required")
	}
	if j.Language == nil {
		return Errorf(EINVALID, "job language required")
	}
	if err := j.Language.Validate(); err != nil {
		return err
	}
	if j.OutputDir == "" {
		return Errorf(EINVALID, "job output directory required")
	}
	if j.IndexFilename == "" {
		j.IndexFilename = DefaultIndexFilename
	}
	if j.ProjectName == "" {
		if abs, err := filepath.Abs(j.BaseDir); err == nil {
			j.ProjectName = filepath.Base(abs)
		} else {
			j.ProjectName = filepath.Base(j.BaseDir)
		}
	}
	return nil
}

// SourceWalker discovers the source files of a job.
type SourceWalker interface {
	// Candidates returns the paths of the files to document, relative to
	// the job base directory, using forward slashes, in sorted order.
	// Returns ENOTFOUND if the base directory does not exist.
	Candidates(ctx context.Context, job *Job) ([]string, error)
}
