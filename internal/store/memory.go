package store

import (
	"context"
	"fmt"
	"sync"
)

var _ RecordStore = (*MemoryStore)(nil)

// MemoryStore is an in-memory backend for tests and ephemeral runs.
// Collections must be seeded (or saved) before they can be loaded,
// matching the missing-resource behavior of the durable backends.
type MemoryStore struct {
	mu          sync.RWMutex
	collections map[string][]Record
	fieldOrders map[string][]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		collections: make(map[string][]Record),
		fieldOrders: make(map[string][]string),
	}
}

// Seed installs a collection without going through SaveAll.
func (s *MemoryStore) Seed(collection string, records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = cloneRecords(records)
}

// FieldOrder reports the field order of the last SaveAll for a collection.
func (s *MemoryStore) FieldOrder(collection string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fieldOrders[collection]
}

func (s *MemoryStore) LoadAll(_ context.Context, collection string) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records, ok := s.collections[collection]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, collection)
	}
	return cloneRecords(records), nil
}

func (s *MemoryStore) SaveAll(_ context.Context, collection string, records []Record, fieldOrder []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[collection] = cloneRecords(records)
	s.fieldOrders[collection] = append([]string(nil), fieldOrder...)
	return nil
}

func cloneRecords(records []Record) []Record {
	out := make([]Record, len(records))
	for i, rec := range records {
		out[i] = rec.clone()
	}
	return out
}
