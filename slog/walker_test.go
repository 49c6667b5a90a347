package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/litdoc"
	"github.com/fwojciec/litdoc/mock"
	litslog "github.com/fwojciec/litdoc/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingWalker_Candidates(t *testing.T) {
	t.Parallel()

	t.Run("logs discovery with count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SourceWalker{
			CandidatesFn: func(_ context.Context, _ *litdoc.Job) ([]string, error) {
				return []string{"a.go", "b.go"}, nil
			},
		}

		w := litslog.NewLoggingWalker(inner, logger)
		paths, err := w.Candidates(context.Background(), &litdoc.Job{BaseDir: "src"})

		require.NoError(t, err)
		assert.Len(t, paths, 2)
		output := buf.String()
		assert.Contains(t, output, "source discovery")
		assert.Contains(t, output, "dir=src")
		assert.Contains(t, output, "count=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SourceWalker{
			CandidatesFn: func(_ context.Context, _ *litdoc.Job) ([]string, error) {
				return nil, errors.New("permission denied")
			},
		}

		w := litslog.NewLoggingWalker(inner, logger)
		_, err := w.Candidates(context.Background(), &litdoc.Job{BaseDir: "src"})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "source discovery")
		assert.Contains(t, output, "err=\"permission denied\"")
	})
}
