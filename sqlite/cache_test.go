package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/litdoc"
	"github.com/fwojciec/litdoc/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCachedDocument(project, path string) *litdoc.CachedDocument {
	return &litdoc.CachedDocument{
		Project:     project,
		SourcePath:  path,
		Language:    "go",
		ContentHash: "1a2b3c",
		Summary: litdoc.DocumentSummary{
			Title:          "main.go",
			SourcePath:     path,
			RelativeURL:    "main.html",
			DocsExcerpt:    "Entry point.",
			CodeExcerpt:    "func main() {}",
			LinesOfCode:    12,
			LinesOfComment: 4,
		},
		HTML: []byte("<html>main</html>"),
	}
}

func TestDocumentCache_SaveCachedDocument(t *testing.T) {
	t.Parallel()

	t.Run("saves with generated ID and timestamp", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewDocumentCache(db)
		ctx := context.Background()

		doc := newCachedDocument("demo", "main.go")
		require.NoError(t, cache.SaveCachedDocument(ctx, doc))

		assert.NotEmpty(t, doc.ID, "ID should be generated")
		assert.False(t, doc.GeneratedAt.IsZero(), "GeneratedAt should be set")

		found, err := cache.FindCachedDocument(ctx, "demo", "main.go")
		require.NoError(t, err)
		assert.Equal(t, doc.ID, found.ID)
		assert.Equal(t, "go", found.Language)
		assert.Equal(t, "1a2b3c", found.ContentHash)
		assert.Equal(t, doc.Summary, found.Summary)
		assert.Equal(t, []byte("<html>main</html>"), found.HTML)
		assert.WithinDuration(t, doc.GeneratedAt, found.GeneratedAt, time.Second)
	})

	t.Run("replaces the entry for the same path and keeps its ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewDocumentCache(db)
		ctx := context.Background()

		first := newCachedDocument("demo", "main.go")
		require.NoError(t, cache.SaveCachedDocument(ctx, first))

		second := newCachedDocument("demo", "main.go")
		second.ContentHash = "ffff"
		second.HTML = []byte("<html>v2</html>")
		require.NoError(t, cache.SaveCachedDocument(ctx, second))

		assert.Equal(t, first.ID, second.ID)

		found, err := cache.FindCachedDocument(ctx, "demo", "main.go")
		require.NoError(t, err)
		assert.Equal(t, "ffff", found.ContentHash)
		assert.Equal(t, []byte("<html>v2</html>"), found.HTML)
	})

	t.Run("keeps projects apart", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewDocumentCache(db)
		ctx := context.Background()

		require.NoError(t, cache.SaveCachedDocument(ctx, newCachedDocument("a", "main.go")))
		require.NoError(t, cache.SaveCachedDocument(ctx, newCachedDocument("b", "main.go")))

		a, err := cache.FindCachedDocument(ctx, "a", "main.go")
		require.NoError(t, err)
		b, err := cache.FindCachedDocument(ctx, "b", "main.go")
		require.NoError(t, err)
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("returns error for invalid document", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewDocumentCache(db)

		err := cache.SaveCachedDocument(context.Background(), &litdoc.CachedDocument{})

		assert.Equal(t, litdoc.EINVALID, litdoc.ErrorCode(err))
	})

	t.Run("stores documents without HTML", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewDocumentCache(db)
		ctx := context.Background()

		doc := newCachedDocument("demo", "empty.go")
		doc.HTML = nil
		require.NoError(t, cache.SaveCachedDocument(ctx, doc))

		found, err := cache.FindCachedDocument(ctx, "demo", "empty.go")
		require.NoError(t, err)
		assert.Empty(t, found.HTML)
	})
}

func TestDocumentCache_FindCachedDocument(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	cache := sqlite.NewDocumentCache(db)

	_, err := cache.FindCachedDocument(context.Background(), "demo", "missing.go")

	assert.Equal(t, litdoc.ENOTFOUND, litdoc.ErrorCode(err))
}

func TestDocumentCache_ClearCache(t *testing.T) {
	t.Parallel()

	t.Run("clears one project", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewDocumentCache(db)
		ctx := context.Background()

		require.NoError(t, cache.SaveCachedDocument(ctx, newCachedDocument("a", "1.go")))
		require.NoError(t, cache.SaveCachedDocument(ctx, newCachedDocument("a", "2.go")))
		require.NoError(t, cache.SaveCachedDocument(ctx, newCachedDocument("b", "1.go")))

		n, err := cache.ClearCache(ctx, "a")

		require.NoError(t, err)
		assert.Equal(t, 2, n)
		_, err = cache.FindCachedDocument(ctx, "a", "1.go")
		assert.Equal(t, litdoc.ENOTFOUND, litdoc.ErrorCode(err))
		_, err = cache.FindCachedDocument(ctx, "b", "1.go")
		require.NoError(t, err)
	})

	t.Run("empty project clears everything", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewDocumentCache(db)
		ctx := context.Background()

		require.NoError(t, cache.SaveCachedDocument(ctx, newCachedDocument("a", "1.go")))
		require.NoError(t, cache.SaveCachedDocument(ctx, newCachedDocument("b", "1.go")))

		n, err := cache.ClearCache(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, 2, n)
	})

	t.Run("nothing to clear", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		cache := sqlite.NewDocumentCache(db)

		n, err := cache.ClearCache(context.Background(), "a")

		require.NoError(t, err)
		assert.Zero(t, n)
	})
}
