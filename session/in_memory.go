package session

import (
	"sync"

	"github.com/hupe1980/ragmesh/core"
	"github.com/hupe1980/ragmesh/vectorstore"
)

// InMemoryStore is a volatile registry of sessions keyed by ID. It is safe
// for concurrent access and creates sessions lazily, giving each one a fresh
// in-memory vector store. Sessions live until the registry (and process) is
// discarded.
type InMemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*core.Session
}

// NewInMemoryStore constructs an empty in-memory session registry.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{sessions: make(map[string]*core.Session)}
}

// Get returns the existing session for the ID or creates one lazily.
func (s *InMemoryStore) Get(sessionID string) *core.Session {
	s.mu.RLock()
	if sess, ok := s.sessions[sessionID]; ok {
		s.mu.RUnlock()
		return sess
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[sessionID]; ok {
		return sess
	}
	sess := core.NewSession(sessionID, vectorstore.NewInMemoryStore())
	s.sessions[sessionID] = sess
	return sess
}

// Len returns the number of live sessions.
func (s *InMemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}
