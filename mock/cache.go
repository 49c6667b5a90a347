package mock

import (
	"context"

	"github.com/fwojciec/litdoc"
)

var _ litdoc.DocumentCache = (*DocumentCache)(nil)

// DocumentCache is a mock implementation of litdoc.DocumentCache.
type DocumentCache struct {
	FindCachedDocumentFn func(ctx context.Context, project, sourcePath string) (*litdoc.CachedDocument, error)
	SaveCachedDocumentFn func(ctx context.Context, doc *litdoc.CachedDocument) error
	ClearCacheFn         func(ctx context.Context, project string) (int, error)
}

func (c *DocumentCache) FindCachedDocument(ctx context.Context, project, sourcePath string) (*litdoc.CachedDocument, error) {
	return c.FindCachedDocumentFn(ctx, project, sourcePath)
}

func (c *DocumentCache) SaveCachedDocument(ctx context.Context, doc *litdoc.CachedDocument) error {
	return c.SaveCachedDocumentFn(ctx, doc)
}

func (c *DocumentCache) ClearCache(ctx context.Context, project string) (int, error) {
	return c.ClearCacheFn(ctx, project)
}
