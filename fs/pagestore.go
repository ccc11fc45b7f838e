// Package fs provides file-based storage for generated pages.
package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/flowsheet"
)

// Ensure FileStore implements flowsheet.PageStore at compile time.
var _ flowsheet.PageStore = (*FileStore)(nil)

// FileStore implements flowsheet.PageStore with atomic update semantics.
// Files are saved to a temporary directory, then moved atomically on Commit.
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

// NewFileStoreForDir creates a FileStore whose output directory is dir.
func NewFileStoreForDir(dir string) *FileStore {
	dir = filepath.Clean(dir)
	return NewFileStore(filepath.Dir(dir), filepath.Base(dir))
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

// Dir returns the final output directory.
func (s *FileStore) Dir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes content to name inside the temporary directory.
// Names must be plain file names without directory components.
func (s *FileStore) Save(ctx context.Context, name string, content []byte) error {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return flowsheet.Errorf(flowsheet.EINVALID, "invalid output file name %q", name)
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(s.tempDir(), name), content, 0644)
}

// MarkerFile is written into every committed output directory. Commit only
// replaces an existing non-empty directory that carries it.
const MarkerFile = ".flowsheet"

// Commit replaces the output directory with the temporary directory.
// A non-empty output directory without MarkerFile is left untouched and
// an EINVALID error is returned.
func (s *FileStore) Commit() error {
	if err := s.checkReplaceable(); err != nil {
		return err
	}

	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(s.tempDir(), MarkerFile), nil, 0644); err != nil {
		return err
	}

	// Remove existing final directory if present
	if err := os.RemoveAll(s.Dir()); err != nil {
		return err
	}

	// Atomically rename temp to final
	if err := os.Rename(s.tempDir(), s.Dir()); err != nil {
		return err
	}

	return nil
}

func (s *FileStore) checkReplaceable() error {
	entries, err := os.ReadDir(s.Dir())
	if errors.Is(err, os.ErrNotExist) || (err == nil && len(entries) == 0) {
		return nil
	} else if err != nil {
		return err
	}

	if _, err := os.Stat(filepath.Join(s.Dir(), MarkerFile)); errors.Is(err, os.ErrNotExist) {
		return flowsheet.Errorf(flowsheet.EINVALID, "refusing to replace %s: directory is not empty and was not created by flowsheet", s.Dir())
	} else if err != nil {
		return err
	}
	return nil
}

// Abort discards everything saved since the store was created.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
