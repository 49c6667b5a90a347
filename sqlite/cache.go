package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/fwojciec/litdoc"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ litdoc.DocumentCache = (*DocumentCache)(nil)

// DocumentCache implements litdoc.DocumentCache using SQLite.
type DocumentCache struct {
	db *DB
}

// NewDocumentCache creates a new DocumentCache.
func NewDocumentCache(db *DB) *DocumentCache {
	return &DocumentCache{db: db}
}

// FindCachedDocument retrieves the cached document for a source path.
func (c *DocumentCache) FindCachedDocument(ctx context.Context, project, sourcePath string) (*litdoc.CachedDocument, error) {
	var doc litdoc.CachedDocument
	var generatedAt string

	err := c.db.QueryRowContext(ctx, `
		SELECT id, project, source_path, language, content_hash,
			title, relative_url, docs_excerpt, code_excerpt, lines_of_code, lines_of_comment,
			html, generated_at
		FROM cached_documents
		WHERE project = ? AND source_path = ?
	`, project, sourcePath).Scan(&doc.ID, &doc.Project, &doc.SourcePath, &doc.Language, &doc.ContentHash,
		&doc.Summary.Title, &doc.Summary.RelativeURL, &doc.Summary.DocsExcerpt, &doc.Summary.CodeExcerpt,
		&doc.Summary.LinesOfCode, &doc.Summary.LinesOfComment,
		&doc.HTML, &generatedAt)

	if err == sql.ErrNoRows {
		return nil, litdoc.Errorf(litdoc.ENOTFOUND, "cached document %q not found", sourcePath)
	}
	if err != nil {
		return nil, err
	}

	doc.Summary.SourcePath = doc.SourcePath
	doc.GeneratedAt, err = parseRFC3339(generatedAt, "generated_at")
	if err != nil {
		return nil, err
	}

	return &doc, nil
}

// SaveCachedDocument creates or replaces the cached document for its project
// and source path. The ID of an existing entry is kept.
func (c *DocumentCache) SaveCachedDocument(ctx context.Context, doc *litdoc.CachedDocument) error {
	if err := doc.Validate(); err != nil {
		return err
	}

	if doc.ID == "" {
		doc.ID = uuid.New().String()
	}
	if doc.GeneratedAt.IsZero() {
		doc.GeneratedAt = time.Now().UTC()
	}
	if doc.HTML == nil {
		doc.HTML = []byte{}
	}

	return c.db.QueryRowContext(ctx, `
		INSERT INTO cached_documents (id, project, source_path, language, content_hash,
			title, relative_url, docs_excerpt, code_excerpt, lines_of_code, lines_of_comment,
			html, generated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (project, source_path) DO UPDATE SET
			language = excluded.language,
			content_hash = excluded.content_hash,
			title = excluded.title,
			relative_url = excluded.relative_url,
			docs_excerpt = excluded.docs_excerpt,
			code_excerpt = excluded.code_excerpt,
			lines_of_code = excluded.lines_of_code,
			lines_of_comment = excluded.lines_of_comment,
			html = excluded.html,
			generated_at = excluded.generated_at
		RETURNING id
	`, doc.ID, doc.Project, doc.SourcePath, doc.Language, doc.ContentHash,
		doc.Summary.Title, doc.Summary.RelativeURL, doc.Summary.DocsExcerpt, doc.Summary.CodeExcerpt,
		doc.Summary.LinesOfCode, doc.Summary.LinesOfComment,
		doc.HTML, doc.GeneratedAt.Format(time.RFC3339)).Scan(&doc.ID)
}

// ClearCache removes the cached documents of project, or all cached
// documents if project is empty.
func (c *DocumentCache) ClearCache(ctx context.Context, project string) (int, error) {
	var result sql.Result
	var err error
	if project == "" {
		result, err = c.db.ExecContext(ctx, "DELETE FROM cached_documents")
	} else {
		result, err = c.db.ExecContext(ctx, "DELETE FROM cached_documents WHERE project = ?", project)
	}
	if err != nil {
		return 0, err
	}

	n, err := result.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(n), nil
}
