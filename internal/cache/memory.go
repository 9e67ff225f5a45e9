package cache

import (
	"context"
	"sync"
)

// MemoryStore is an in-process Store without expiry, used when no Redis
// address is configured and in tests.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]string)}
}

func (s *MemoryStore) Get(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	val, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok {
		CacheMisses.Inc()
		return "", ErrCacheMiss
	}
	CacheHits.Inc()
	return val, nil
}

func (s *MemoryStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	s.entries[key] = value
	s.mu.Unlock()
	return nil
}

// Len reports the number of entries.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
