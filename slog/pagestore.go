package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/litdoc"
)

// Ensure LoggingPageStore implements litdoc.PageStore.
var _ litdoc.PageStore = (*LoggingPageStore)(nil)

// LoggingPageStore wraps a PageStore with logging of saved pages.
type LoggingPageStore struct {
	next   litdoc.PageStore
	logger *slog.Logger
}

// NewLoggingPageStore creates a new LoggingPageStore.
func NewLoggingPageStore(next litdoc.PageStore, logger *slog.Logger) *LoggingPageStore {
	return &LoggingPageStore{next: next, logger: logger}
}

// Save delegates to the wrapped store and logs the page.
func (s *LoggingPageStore) Save(ctx context.Context, page *litdoc.Page) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("page saved",
			"path", page.Path,
			"bytes", len(page.Content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Save(ctx, page)
}

// Commit delegates to the wrapped store and logs the result.
func (s *LoggingPageStore) Commit() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("pages committed",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Commit()
}

// Abort delegates to the wrapped store and logs the result.
func (s *LoggingPageStore) Abort() (err error) {
	defer func(begin time.Time) {
		s.logger.Info("pages aborted",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Abort()
}
