package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage writes blobs to a directory on disk. Used in development and
// in tests; the served URL is a path the API can map to the storage root.
type LocalStorage struct {
	root          string
	publicBaseURL string
}

// NewLocalStorage creates a disk-backed storage rooted at root.
func NewLocalStorage(root, publicBaseURL string) *LocalStorage {
	return &LocalStorage{root: root, publicBaseURL: publicBaseURL}
}

func (s *LocalStorage) Upload(ctx context.Context, key string, data []byte, contentType, filename string) (string, error) {
	path := filepath.Join(s.root, filepath.FromSlash(key))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("storage: create dir for %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("storage: write %s: %w", key, err)
	}

	if url, ok := s.PublicURL(key); ok {
		return url, nil
	}
	return "/storage/" + key, nil
}

func (s *LocalStorage) Download(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, filepath.FromSlash(key)))
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return data, nil
}

func (s *LocalStorage) PublicURL(key string) (string, bool) {
	if s.publicBaseURL == "" {
		return "", false
	}
	return strings.TrimRight(s.publicBaseURL, "/") + "/" + key, true
}
