package memcache

import (
	"sync"
	"time"
)

type entry struct {
	value     string
	expiresAt time.Time
}

// TTLStore is a process-local string store with per-key expiry. It backs the
// wizard draft store when Redis isn't configured, and the session registry.
type TTLStore struct {
	mu   sync.RWMutex
	data map[string]entry
}

func NewTTLStore() *TTLStore {
	return &TTLStore{
		data: make(map[string]entry),
	}
}

func (s *TTLStore) Set(key string, value string, ttl time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = entry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (s *TTLStore) Get(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.data[key]
	if !ok {
		return "", false
	}
	if time.Now().After(e.expiresAt) {
		delete(s.data, key) // cleanup expired
		return "", false
	}
	return e.value, true
}

func (s *TTLStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
}
