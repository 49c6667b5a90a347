package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/litdoc"
)

// Ensure LoggingDocumentCache implements litdoc.DocumentCache.
var _ litdoc.DocumentCache = (*LoggingDocumentCache)(nil)

// LoggingDocumentCache wraps a DocumentCache with logging of lookups and writes.
type LoggingDocumentCache struct {
	next   litdoc.DocumentCache
	logger *slog.Logger
}

// NewLoggingDocumentCache creates a new LoggingDocumentCache.
func NewLoggingDocumentCache(next litdoc.DocumentCache, logger *slog.Logger) *LoggingDocumentCache {
	return &LoggingDocumentCache{next: next, logger: logger}
}

// FindCachedDocument delegates to the wrapped cache and logs the lookup.
// A miss is not logged as an error.
func (c *LoggingDocumentCache) FindCachedDocument(ctx context.Context, project, sourcePath string) (doc *litdoc.CachedDocument, err error) {
	defer func(begin time.Time) {
		logErr := err
		if litdoc.ErrorCode(err) == litdoc.ENOTFOUND {
			logErr = nil
		}
		c.logger.Info("cache lookup",
			"path", sourcePath,
			"hit", err == nil,
			"duration", time.Since(begin),
			"err", logErr,
		)
	}(time.Now())
	return c.next.FindCachedDocument(ctx, project, sourcePath)
}

// SaveCachedDocument delegates to the wrapped cache and logs the write.
func (c *LoggingDocumentCache) SaveCachedDocument(ctx context.Context, doc *litdoc.CachedDocument) (err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache store",
			"path", doc.SourcePath,
			"bytes", len(doc.HTML),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.SaveCachedDocument(ctx, doc)
}

// ClearCache delegates to the wrapped cache and logs the number removed.
func (c *LoggingDocumentCache) ClearCache(ctx context.Context, project string) (n int, err error) {
	defer func(begin time.Time) {
		c.logger.Info("cache clear",
			"project", project,
			"count", n,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ClearCache(ctx, project)
}
