package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore is a string-keyed record store backed by one JSON file per key
// inside a single directory. It plays the role browser local/session storage
// plays for the web version of the app: Get/Set/Remove, whole-value writes,
// no partial updates.
type FileStore struct {
	dir string
}

func New(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Dir() string {
	return s.dir
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get returns the raw record for key. The second return is false when no
// record exists, which is not an error.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read record %s: %w", key, err)
	}
	return raw, true, nil
}

// Set overwrites the record for key with value.
func (s *FileStore) Set(key string, value []byte) error {
	if err := os.WriteFile(s.path(key), value, 0o644); err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}

// Remove deletes the record for key. Removing an absent record is a no-op.
func (s *FileStore) Remove(key string) error {
	if err := os.Remove(s.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove record %s: %w", key, err)
	}
	return nil
}
