package litdoc

import (
	"context"
	"time"
)

// CachedDocument is a previously generated document, reused when its source
// has not changed.
type CachedDocument struct {
	ID          string          `json:"id"`
	Project     string          `json:"project"`
	SourcePath  string          `json:"sourcePath"`
	Language    string          `json:"language"`
	ContentHash string          `json:"contentHash"`
	Summary     DocumentSummary `json:"summary"`
	HTML        []byte          `json:"-"`
	GeneratedAt time.Time       `json:"generatedAt"`
}

// Validate returns an error if the cached document contains invalid fields.
func (d *CachedDocument) Validate() error {
	if d.Project == "" {
		return Errorf(EINVALID, "cached document project required")
	}
	if d.SourcePath == "" {
		return Errorf(EINVALID, "cached document source path required")
	}
	if d.ContentHash == "" {
		return Errorf(EINVALID, "cached document content hash required")
	}
	return nil
}

// Matches reports whether the cached document was generated from the same
// content with the same language.
func (d *CachedDocument) Matches(language, contentHash string) bool {
	return d.Language == language && d.ContentHash == contentHash
}

// DocumentCache stores generated documents for incremental generation.
type DocumentCache interface {
	// FindCachedDocument retrieves the cached document for a source path.
	// Returns ENOTFOUND if nothing is cached.
	FindCachedDocument(ctx context.Context, project, sourcePath string) (*CachedDocument, error)

	// SaveCachedDocument creates or replaces the cached document for its
	// project and source path.
	SaveCachedDocument(ctx context.Context, doc *CachedDocument) error

	// ClearCache removes the cached documents of a project, or of every
	// project if project is empty, and returns how many were removed.
	ClearCache(ctx context.Context, project string) (int, error)
}
