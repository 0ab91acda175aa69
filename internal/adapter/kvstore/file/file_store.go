package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
)

// Store keeps one file per key under a directory. It is the default
// durable medium, the closest server-side analog of the browser
// storage the collection originally lived in.
type Store struct {
	dir string
}

func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir}, nil
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

// Set writes through a temp file and renames, so a crash mid-write
// never leaves a truncated payload behind the key.
func (s *Store) Set(ctx context.Context, key string, value []byte) error {
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, s.path(key))
}

func (s *Store) Delete(ctx context.Context, key string) error {
	err := os.Remove(s.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
