package catalog

import (
	"context"
	"fmt"
	"os"

	"github.com/osse101/JobEconomy_Go/internal/utils"
)

// Store persists the raw catalog document.
// Read returns an error matching fs.ErrNotExist when nothing was saved yet.
type Store interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// FileStore keeps the catalog in a single YAML file
type FileStore struct {
	path string
}

// NewFileStore creates a store for path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the catalog file location
func (f *FileStore) Path() string {
	return f.path
}

// Read loads the whole file
func (f *FileStore) Read(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgReadCatalog, err)
	}
	return data, nil
}

// Write replaces the file atomically
func (f *FileStore) Write(_ context.Context, data []byte) error {
	if err := utils.WriteFileAtomic(f.path, data, FilePermissions); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgWriteCatalog, err)
	}
	return nil
}
