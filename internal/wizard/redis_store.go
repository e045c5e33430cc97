package wizard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const draftKeyPattern = "wizard:draft:%s"

// RedisDraftStore persists drafts in Redis with a TTL so abandoned sessions
// age out on their own.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	return &RedisDraftStore{client: client, ttl: ttl}
}

func (s *RedisDraftStore) Save(ctx context.Context, sessionID string, draft TripDraft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	if err := s.client.Set(ctx, draftKey(sessionID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

func (s *RedisDraftStore) Load(ctx context.Context, sessionID string) (TripDraft, bool, error) {
	data, err := s.client.Get(ctx, draftKey(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return TripDraft{}, false, nil
		}
		return TripDraft{}, false, fmt.Errorf("load draft: %w", err)
	}
	var draft TripDraft
	if err := json.Unmarshal(data, &draft); err != nil {
		return TripDraft{}, false, fmt.Errorf("unmarshal draft: %w", err)
	}
	return draft, true, nil
}

func (s *RedisDraftStore) Clear(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, draftKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("clear draft: %w", err)
	}
	return nil
}

func draftKey(sessionID string) string {
	return fmt.Sprintf(draftKeyPattern, sessionID)
}
