package repository

import (
	"context"
	"sync"

	"github.com/lumina-app/lumina-engine/internal/core/domain"
)

var _ domain.BlobStore = (*MemoryBlobStore)(nil)

// MemoryBlobStore is an ephemeral BlobStore for tests and local runs
// without a backing service.
type MemoryBlobStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

func NewMemoryBlobStore() *MemoryBlobStore {
	return &MemoryBlobStore{
		blobs: make(map[string][]byte),
	}
}

func (s *MemoryBlobStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	raw, ok := s.blobs[key]
	if !ok {
		return nil, false, nil
	}

	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true, nil
}

func (s *MemoryBlobStore) Set(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.blobs[key] = stored
	return nil
}

func (s *MemoryBlobStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.blobs, key)
	return nil
}

func (s *MemoryBlobStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.blobs = make(map[string][]byte)
	return nil
}
