package persistence_inmemory

import (
	"context"
	"sort"
	"sync"

	"github.com/eclipse-basyx/basyx-go-submodelstore/internal/common"
)

// InMemoryDocumentStore keeps submodel documents in a map. It is used for
// tests and single instance deployments without persistence.
type InMemoryDocumentStore struct {
	faults
	mu        sync.RWMutex
	documents map[string][]byte
}

// NewInMemoryDocumentStore creates a new in-memory document store
func NewInMemoryDocumentStore() *InMemoryDocumentStore {
	return &InMemoryDocumentStore{
		documents: make(map[string][]byte),
	}
}

// Get returns the document stored under id
func (s *InMemoryDocumentStore) Get(ctx context.Context, id string) ([]byte, error) {
	if err := s.check(ctx, OpGet, id); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, exists := s.documents[id]
	if !exists {
		return nil, common.NewErrNotFound(id)
	}
	return append([]byte(nil), doc...), nil
}

// Put stores doc under id, replacing any previous document
func (s *InMemoryDocumentStore) Put(ctx context.Context, id string, doc []byte) error {
	if err := s.check(ctx, OpPut, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.documents[id] = append([]byte(nil), doc...)
	return nil
}

// Delete removes the document stored under id
func (s *InMemoryDocumentStore) Delete(ctx context.Context, id string) error {
	if err := s.check(ctx, OpDelete, id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.documents[id]; !exists {
		return common.NewErrNotFound(id)
	}
	delete(s.documents, id)
	return nil
}

// List returns the ids of all stored documents in ascending order
func (s *InMemoryDocumentStore) List(ctx context.Context) ([]string, error) {
	if err := s.check(ctx, OpList, ""); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.documents))
	for id := range s.documents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}
