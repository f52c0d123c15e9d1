package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/vovakirdan/binary-breaker/internal/scorefile"
)

// FileStore keeps the high score as a decimal integer in a text file,
// in the same format the device writes to flash.
type FileStore struct {
	*scorefile.Store
}

var _ Backend = (*FileStore)(nil)

// dirFS resolves scorefile names inside one directory.
type dirFS string

func (d dirFS) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(filepath.Join(string(d), name))
}

func (d dirFS) WriteFile(name string, data []byte) error {
	return os.WriteFile(filepath.Join(string(d), name), data, 0o644)
}

func (d dirFS) Remove(name string) error {
	return os.Remove(filepath.Join(string(d), name))
}

// OpenFile returns a store backed by the file at path. The file itself is
// created on the first save.
func OpenFile(path string) (*FileStore, error) {
	path, err := prepare(path)
	if err != nil {
		return nil, err
	}
	dir, name := filepath.Split(path)
	return &FileStore{Store: scorefile.New(dirFS(dir), name)}, nil
}

// Clear removes the file. A file that was never written is not an error.
func (f *FileStore) Clear() error {
	if err := f.Store.Clear(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: cannot clear high score: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open during reads and writes.
func (f *FileStore) Close() error {
	return nil
}
