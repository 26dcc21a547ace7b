package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores blobs on the local filesystem and serves them from a
// public base URL (the Fiber app mounts the directory as static files).
type LocalStorage struct {
	baseDir string
	baseURL string
}

// NewLocalStorage creates a storage rooted at baseDir, publicly reachable
// under baseURL.
func NewLocalStorage(baseDir, baseURL string) *LocalStorage {
	return &LocalStorage{
		baseDir: baseDir,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Upload writes the blob to disk, creating parent directories as needed.
func (s *LocalStorage) Upload(filePath string, r io.Reader) error {
	dst := filepath.Join(s.baseDir, filepath.FromSlash(filePath))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("failed to create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return fmt.Errorf("failed to write upload file: %w", err)
	}
	return nil
}

// GetPublicURL returns the URL the blob is served from.
func (s *LocalStorage) GetPublicURL(filePath string) string {
	return s.baseURL + "/" + strings.TrimLeft(filePath, "/")
}
