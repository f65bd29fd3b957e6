package persistence_inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
)

type blob struct {
	contentType string
	data        []byte
}

// InMemoryBlobStore keeps attachment payloads in a map.
type InMemoryBlobStore struct {
	faults
	mu    sync.RWMutex
	blobs map[string]blob
}

// NewInMemoryBlobStore creates a new in-memory blob store
func NewInMemoryBlobStore() *InMemoryBlobStore {
	return &InMemoryBlobStore{
		blobs: make(map[string]blob),
	}
}

// Put stores data under key, replacing any previous payload
func (s *InMemoryBlobStore) Put(ctx context.Context, key string, contentType string, data []byte) error {
	if err := s.check(ctx, OpPut, key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[key] = blob{contentType: contentType, data: append([]byte(nil), data...)}
	return nil
}

// Get returns the content type and payload stored under key
func (s *InMemoryBlobStore) Get(ctx context.Context, key string) (string, []byte, error) {
	if err := s.check(ctx, OpGet, key); err != nil {
		return "", nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, exists := s.blobs[key]
	if !exists {
		return "", nil, common.NewErrNotFound(key)
	}
	return b.contentType, append([]byte(nil), b.data...), nil
}

// Delete removes the payload stored under key
func (s *InMemoryBlobStore) Delete(ctx context.Context, key string) error {
	if err := s.check(ctx, OpDelete, key); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.blobs[key]; !exists {
		return common.NewErrNotFound(key)
	}
	delete(s.blobs, key)
	return nil
}

// Keys returns all stored keys in ascending order. Tests use it to detect
// orphaned payloads.
func (s *InMemoryBlobStore) Keys() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	keys := make([]string, 0, len(s.blobs))
	for key := range s.blobs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
