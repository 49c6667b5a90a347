package mock

import (
	"context"

	"github.com/fwojciec/litdoc"
)

// Compile-time interface verification.
var (
	_ litdoc.SourceWalker = (*SourceWalker)(nil)
	_ litdoc.PageStore    = (*PageStore)(nil)
)

// SourceWalker is a mock implementation of litdoc.SourceWalker.
type SourceWalker struct {
	CandidatesFn func(ctx context.Context, job *litdoc.Job) ([]string, error)
}

func (w *SourceWalker) Candidates(ctx context.Context, job *litdoc.Job) ([]string, error) {
	return w.CandidatesFn(ctx, job)
}

// PageStore is a mock implementation of litdoc.PageStore.
type PageStore struct {
	SaveFn   func(ctx context.Context, page *litdoc.Page) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *PageStore) Save(ctx context.Context, page *litdoc.Page) error {
	return s.SaveFn(ctx, page)
}

func (s *PageStore) Commit() error {
	return s.CommitFn()
}

func (s *PageStore) Abort() error {
	return s.AbortFn()
}
