// Package fs provides source discovery and file-based output storage.
package fs

import (
	"path"
	"strings"
)

// StagingSuffix is appended to the output directory name while pages are
// staged before Commit.
const StagingSuffix = ".tmp"

// DocumentPath converts a source path relative to the job base directory to
// the path of its generated page.
// Example: a/b/file.go → a/b/file.html
func DocumentPath(sourcePath string) string {
	p := path.Clean(strings.ReplaceAll(sourcePath, "\\", "/"))
	p = strings.TrimPrefix(p, "/")
	return strings.TrimSuffix(p, path.Ext(p)) + ".html"
}
