package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/litdoc"
)

// Ensure FileStore implements litdoc.PageStore at compile time.
var _ litdoc.PageStore = (*FileStore)(nil)

// FileStore implements litdoc.PageStore with atomic update semantics.
// Pages are saved to a temporary directory, then moved atomically on Commit.
type FileStore struct {
	baseDir string
	name    string
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

// NewFileStoreForDir creates a FileStore that replaces outputDir on Commit.
func NewFileStoreForDir(outputDir string) *FileStore {
	clean := filepath.Clean(outputDir)
	return NewFileStore(filepath.Dir(clean), filepath.Base(clean))
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+StagingSuffix)
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes page to the staging directory. Page paths must be relative
// and stay inside the output directory.
func (s *FileStore) Save(ctx context.Context, page *litdoc.Page) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath := filepath.FromSlash(page.Path)
	if !filepath.IsLocal(relPath) {
		return litdoc.Errorf(litdoc.EINVALID, "page path %q: path traversal outside output directory", page.Path)
	}

	fullPath := filepath.Join(s.tempDir(), relPath)

	// Create parent directories
	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	return os.WriteFile(fullPath, page.Content, 0644)
}

func (s *FileStore) Commit() error {
	// Nothing staged means nothing to publish
	if _, err := os.Stat(s.tempDir()); os.IsNotExist(err) {
		return litdoc.Errorf(litdoc.ENOTFOUND, "no staged pages in %s", s.tempDir())
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.finalDir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
