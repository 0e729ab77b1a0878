package session

import (
	"context"
	"os"
	"path/filepath"
	"strings"
)

// FileStorage persists values as files under a directory, one file per key.
// Files are written 0600 since they hold bearer tokens.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the directory (0700) if needed.
func NewFileStorage(dir string) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, err
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if os.IsNotExist(err) {
		return "", ErrKeyNotFound
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (f *FileStorage) Set(_ context.Context, key, value string) error {
	return os.WriteFile(f.path(key), []byte(value), 0o600)
}

func (f *FileStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

// path flattens the key into a single file name.
func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, strings.ReplaceAll(key, string(os.PathSeparator), "_"))
}
