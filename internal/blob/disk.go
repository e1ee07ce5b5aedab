package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lombokbarat/geoportal/internal/filex"
)

// DiskStore keeps uploads under a root directory on the local filesystem.
type DiskStore struct {
	root string
}

// NewDiskStore creates a disk-backed store rooted at dir, creating it if
// needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	root, err := filex.EnsureDir(dir)
	if err != nil {
		return nil, err
	}
	return &DiskStore{root: root}, nil
}

// Root returns the absolute root directory of the store.
func (s *DiskStore) Root() string { return s.root }

// Write stores data at key below the root and returns the full path.
func (s *DiskStore) Write(_ context.Context, key string, data []byte) (string, error) {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if _, err := filex.EnsureDir(filepath.Dir(path)); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, data, 0o660); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	return path, nil
}

// Remove deletes the file at key. Removing a missing key is not an error.
func (s *DiskStore) Remove(_ context.Context, key string) error {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}
