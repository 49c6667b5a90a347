// Package slog provides logging decorators for litdoc services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/litdoc"
)

// Ensure LoggingWalker implements litdoc.SourceWalker.
var _ litdoc.SourceWalker = (*LoggingWalker)(nil)

// LoggingWalker wraps a SourceWalker with logging of source discovery.
type LoggingWalker struct {
	next   litdoc.SourceWalker
	logger *slog.Logger
}

// NewLoggingWalker creates a new LoggingWalker.
func NewLoggingWalker(next litdoc.SourceWalker, logger *slog.Logger) *LoggingWalker {
	return &LoggingWalker{next: next, logger: logger}
}

// Candidates delegates to the wrapped walker and logs the operation.
func (w *LoggingWalker) Candidates(ctx context.Context, job *litdoc.Job) (paths []string, err error) {
	defer func(begin time.Time) {
		w.logger.Info("source discovery",
			"dir", job.BaseDir,
			"count", len(paths),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Candidates(ctx, job)
}
