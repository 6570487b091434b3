// Package storage persists rendered reports.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Storage provides methods for persisting report files.
type Storage interface {
	Store(ctx context.Context, name string, content io.Reader) error
}

// FileStorage persists to a local file system.
type FileStorage struct {
	baseDir string
}

// NewFileStorage returns an initialized FileStorage.
func NewFileStorage(baseDir string) *FileStorage {
	return &FileStorage{baseDir}
}

var ErrEmptyName = fmt.Errorf("name must not be empty")

// Path returns where a file called name ends up.
// Making the name absolute before joining removes parent directory references.
func (s *FileStorage) Path(name string) string {
	return filepath.Join(s.baseDir, filepath.Clean("/"+name))
}

// Store implements Storage.  Existing files are replaced.
func (s *FileStorage) Store(ctx context.Context, name string, content io.Reader) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	destPath := s.Path(name)
	err := os.MkdirAll(filepath.Dir(destPath), 0o755)
	if err != nil {
		return err
	}

	// Write to a temporary file first so readers never see half a report.
	tmp, err := os.CreateTemp(filepath.Dir(destPath), ".report-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	_, err = io.Copy(tmp, content)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Chmod(0o644)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}

	return os.Rename(tmp.Name(), destPath)
}

var _ Storage = &FileStorage{}
