package litdoc

import (
	"context"
	"strings"
)

// Page is a generated file, addressed relative to the output directory.
type Page struct {
	Path    string
	Content []byte
}

// PageStore persists pages to storage with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type PageStore interface {
	Save(ctx context.Context, page *Page) error
	Commit() error
	Abort() error
}

// RootPath returns the relative path from the directory of a page back to
// the output root, with a trailing slash, or "" for pages at the root.
// Example: a/b/file.html → ../../
func RootPath(pagePath string) string {
	depth := strings.Count(strings.Trim(pagePath, "/"), "/")
	return strings.Repeat("../", depth)
}
