package store

import (
	"sync"

	"github.com/i474232898/weather-chat/internal/chat"
)

// Stats summarizes what the store currently holds.
type Stats struct {
	Clients   int
	Exchanges int
}

// MemoryStore is a concurrency-safe, process-lifetime chat history keyed by
// client identity. Appends are serialized, so exchanges of one client keep
// their completion order. Nothing is ever evicted.
type MemoryStore struct {
	mu sync.RWMutex

	// key: client identity, value: exchanges in chronological order
	data map[string][]chat.Exchange
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		data: make(map[string][]chat.Exchange),
	}
}

// Append records an exchange, creating the identity's entry if absent.
func (s *MemoryStore) Append(identity string, ex chat.Exchange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[identity] = append(s.data[identity], ex)
}

// History returns a copy of the identity's exchanges; empty (non-nil) if none.
func (s *MemoryStore) History(identity string) []chat.Exchange {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]chat.Exchange, len(s.data[identity]))
	copy(out, s.data[identity])
	return out
}

// Stats counts clients and exchanges.
func (s *MemoryStore) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st := Stats{Clients: len(s.data)}
	for _, h := range s.data {
		st.Exchanges += len(h)
	}
	return st
}
