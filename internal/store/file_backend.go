package store

import (
	"context"
	"path/filepath"
	"sync"

	"nocheckin/internal/domain"
)

// FileBackend keeps one JSON file per bucket under dir.
type FileBackend struct {
	dir string
	mu  sync.Mutex
}

// NewFileBackend returns a FileBackend rooted at dir. dir must exist.
func NewFileBackend(dir string) *FileBackend {
	return &FileBackend{dir: dir}
}

func (s *FileBackend) path(bucket domain.Bucket) string {
	return filepath.Join(s.dir, string(bucket)+".json")
}

// Get reads the bucket's file.
func (s *FileBackend) Get(_ context.Context, bucket domain.Bucket) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return readFile(s.path(bucket))
}

// Put atomically replaces the bucket's file.
func (s *FileBackend) Put(_ context.Context, bucket domain.Bucket, payload []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeFile(s.path(bucket), payload, 0o600)
}

// Delete removes the files of the given buckets.
func (s *FileBackend) Delete(_ context.Context, buckets ...domain.Bucket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range buckets {
		if err := removeFile(s.path(b)); err != nil {
			return err
		}
	}
	return nil
}

// Close is a no-op.
func (s *FileBackend) Close() error { return nil }

// Compile-time assertion that FileBackend implements Backend.
var _ Backend = (*FileBackend)(nil)
