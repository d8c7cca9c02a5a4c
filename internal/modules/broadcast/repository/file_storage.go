package repository

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"github.com/samber/oops"
)

// FileStorage implements DocumentStore as one JSON file per document
// (channels.json, ad.json) under basePath.
type FileStorage struct {
	basePath string
	mu       sync.RWMutex
}

// NewFileStorage creates a new file-based document store
func NewFileStorage(basePath string) (*FileStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, oops.With("base_path", basePath, "context", "failed to create storage directory").Wrap(err)
	}

	return &FileStorage{basePath: basePath}, nil
}

func (s *FileStorage) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrDocumentNotFound
		}
		return nil, oops.With("document", key, "context", "failed to read document").Wrap(err)
	}
	return data, nil
}

// Put writes the document to a temp file in the same directory and renames it
// over the previous version.
func (s *FileStorage) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp, err := os.CreateTemp(s.basePath, key+".*.tmp")
	if err != nil {
		return oops.With("document", key, "context", "failed to create temp file").Wrap(err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return oops.With("document", key, "context", "failed to write temp file").Wrap(err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return oops.With("document", key, "context", "failed to sync temp file").Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return oops.With("document", key, "context", "failed to close temp file").Wrap(err)
	}

	if err := os.Rename(tmpPath, s.path(key)); err != nil {
		_ = os.Remove(tmpPath)
		return oops.With("document", key, "context", "failed to replace document").Wrap(err)
	}
	return nil
}

func (s *FileStorage) Close() error {
	return nil
}

func (s *FileStorage) path(key string) string {
	return filepath.Join(s.basePath, key+".json")
}

// Shutdown closes the store when the DI container shuts down
func (s *FileStorage) Shutdown() error {
	return s.Close()
}
