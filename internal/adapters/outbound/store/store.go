package store

import (
	"os"
)

// FileStore implements domain.ResourceStore against the real filesystem.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

func (s *FileStore) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

func (s *FileStore) WriteFile(path string, data []byte) error {
	return os.WriteFile(path, data, 0o644)
}

func (s *FileStore) MkdirAll(path string) error {
	return os.MkdirAll(path, 0o755)
}
