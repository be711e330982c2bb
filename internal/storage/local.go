package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LocalStorage archives exported reports on the local filesystem
type LocalStorage struct {
	basePath string
}

// NewLocalStorage creates a new local storage instance
func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStorage{basePath: basePath}, nil
}

// Save writes data under subDir/YYYY/MM with a unique name that keeps the
// original extension, and returns the relative path
func (s *LocalStorage) Save(data []byte, filename string, subDir string) (string, error) {
	dir := filepath.Join(s.basePath, subDir, time.Now().Format("2006/01"))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	ext := filepath.Ext(filename)
	filePath := filepath.Join(dir, uuid.NewString()+ext)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	relPath, err := filepath.Rel(s.basePath, filePath)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(relPath), nil
}

// Open returns an archived file for reading
func (s *LocalStorage) Open(relativePath string) (*os.File, error) {
	path, err := s.resolve(relativePath)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// Delete removes an archived file
func (s *LocalStorage) Delete(relativePath string) error {
	path, err := s.resolve(relativePath)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

// Exists checks if a file exists
func (s *LocalStorage) Exists(relativePath string) bool {
	path, err := s.resolve(relativePath)
	if err != nil {
		return false
	}
	_, err = os.Stat(path)
	return err == nil
}

// resolve joins relativePath to the base path, refusing paths that escape it
func (s *LocalStorage) resolve(relativePath string) (string, error) {
	path := filepath.Join(s.basePath, filepath.FromSlash(relativePath))
	rel, err := filepath.Rel(s.basePath, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("invalid storage path: %s", relativePath)
	}
	return path, nil
}
