package wizard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tripwise/pkg/memcache"
)

// MemoryDraftStore keeps drafts in a process-local TTL map. Used in dev and
// tests, and as the fallback when REDIS_URL is unset.
type MemoryDraftStore struct {
	store *memcache.TTLStore
	ttl   time.Duration
}

func NewMemoryDraftStore(ttl time.Duration) *MemoryDraftStore {
	return &MemoryDraftStore{store: memcache.NewTTLStore(), ttl: ttl}
}

func (s *MemoryDraftStore) Save(_ context.Context, sessionID string, draft TripDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	s.store.Set(draftKey(sessionID), string(data), s.ttl)
	return nil
}

func (s *MemoryDraftStore) Load(_ context.Context, sessionID string) (TripDraft, bool, error) {
	data, ok := s.store.Get(draftKey(sessionID))
	if !ok {
		return TripDraft{}, false, nil
	}
	var draft TripDraft
	if err := json.Unmarshal([]byte(data), &draft); err != nil {
		return TripDraft{}, false, fmt.Errorf("unmarshal draft: %w", err)
	}
	return draft, true, nil
}

func (s *MemoryDraftStore) Clear(_ context.Context, sessionID string) error {
	s.store.Delete(draftKey(sessionID))
	return nil
}
