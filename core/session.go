package core

import (
	"sync"
	"time"
)

// Session is the conversational container owning the vector store and the
// append-only chat history for one conversation. It is safe for concurrent
// access.
//
// Contract:
//   - History mutations update the Updated timestamp
//   - History returns a defensive copy to avoid external mutation
//   - AppendExchange appends the user and assistant turns of one exchange
//     atomically; a failed exchange must append neither
//   - History grows for the session's lifetime; nothing trims or summarizes
//     it (a documented scaling limitation of the default behavior)
type Session struct {
	ID      string
	Store   VectorStore
	Created time.Time
	Updated time.Time

	mu      sync.RWMutex
	history []Message
}

// NewSession creates a session with the given ID owning the provided store.
func NewSession(id string, store VectorStore) *Session {
	now := time.Now()
	return &Session{ID: id, Store: store, Created: now, Updated: now}
}

// AppendExchange appends one completed user/assistant exchange to the
// history, user turn first.
func (s *Session) AppendExchange(user, assistant Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.history = append(s.history, user, assistant)
	s.Updated = time.Now()
}

// History returns a copy of the full message history in order.
func (s *Session) History() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history := make([]Message, len(s.history))
	copy(history, s.history)
	return history
}

// HistoryLen returns the number of messages in the history.
func (s *Session) HistoryLen() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.history)
}
