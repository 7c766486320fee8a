package session

import (
	"context"
	"sync"
	"time"
)

// MemoryStore keeps sessions in process memory. It is the dev/test fallback
// when neither Redis nor Mongo is configured; sessions die with the process.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

type memoryEntry struct {
	data      map[string]interface{}
	expiresAt time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Load(_ context.Context, id string) (map[string]interface{}, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return map[string]interface{}{}, nil
	}

	// Copy so callers never mutate the stored map in place.
	data := make(map[string]interface{}, len(entry.data))
	for k, v := range entry.data {
		data[k] = v
	}
	return data, nil
}

func (s *MemoryStore) Save(_ context.Context, id string, data map[string]interface{}, ttl time.Duration) error {
	copied := make(map[string]interface{}, len(data))
	for k, v := range data {
		copied[k] = v
	}

	s.mu.Lock()
	s.entries[id] = memoryEntry{data: copied, expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Destroy(_ context.Context, id string) error {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
	return nil
}

// GC drops expired entries. Wired to the scheduler at boot.
func (s *MemoryStore) GC() int {
	now := time.Now()
	removed := 0

	s.mu.Lock()
	for id, entry := range s.entries {
		if now.After(entry.expiresAt) {
			delete(s.entries, id)
			removed++
		}
	}
	s.mu.Unlock()
	return removed
}
