package vectorstore

import (
	"sync"

	"github.com/hupe1980/ragmesh/core"
)

// InMemoryStore is a volatile, append-only core.VectorStore holding records
// in a process-local slice. It is safe for concurrent access: appends take
// the write lock and reads return a snapshot taken under the read lock, so a
// search running concurrently with ingestion simply does not see records
// appended after its snapshot.
//
// The first appended record pins the store's embedding dimension; every later
// append must match it. Vectors are copied in on append so callers cannot
// mutate stored embeddings through slices they retain.
type InMemoryStore struct {
	mu        sync.RWMutex
	dimension int
	records   []core.Record
}

var _ core.VectorStore = (*InMemoryStore)(nil)

// NewInMemoryStore constructs an empty in-memory vector store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{}
}

// Append implements core.VectorStore.
func (s *InMemoryStore) Append(record core.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(record.Embedding) == 0 {
		return &core.DimensionMismatchError{Want: s.dimension, Got: 0}
	}
	if s.dimension == 0 {
		s.dimension = len(record.Embedding)
	} else if len(record.Embedding) != s.dimension {
		return &core.DimensionMismatchError{Want: s.dimension, Got: len(record.Embedding)}
	}
	embedding := make([]float64, len(record.Embedding))
	copy(embedding, record.Embedding)
	record.Embedding = embedding
	s.records = append(s.records, record)
	return nil
}

// All implements core.VectorStore. The returned slice is a snapshot; stored
// embeddings are shared and must be treated as read-only.
func (s *InMemoryStore) All() []core.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]core.Record, len(s.records))
	copy(records, s.records)
	return records
}

// Len implements core.VectorStore.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Dimension implements core.VectorStore.
func (s *InMemoryStore) Dimension() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dimension
}
