package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/zeevo-shop/zeevo-edge/pkg/redis"
)

// ProfileStore is the application-state container for session profiles.
// Profiles are written once on verification, read per request, and removed
// on logout or TTL expiry.
type ProfileStore interface {
	Set(ctx context.Context, sessionID string, profile UserProfile) error
	Get(ctx context.Context, sessionID string) (*UserProfile, error)
	Delete(ctx context.Context, sessionID string) error
}

// RedisProfileStore persists profiles in redis with the session token TTL.
type RedisProfileStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisProfileStore(client *redis.Client, ttl time.Duration) (*RedisProfileStore, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &RedisProfileStore{client: client, ttl: ttl}, nil
}

func (s *RedisProfileStore) Set(ctx context.Context, sessionID string, profile UserProfile) error {
	raw, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("encoding profile: %w", err)
	}
	return s.client.Set(ctx, s.client.SessionKey(sessionID), string(raw), s.ttl)
}

func (s *RedisProfileStore) Get(ctx context.Context, sessionID string) (*UserProfile, error) {
	raw, err := s.client.Get(ctx, s.client.SessionKey(sessionID))
	if redis.IsNil(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	var profile UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}
	return &profile, nil
}

func (s *RedisProfileStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.client.SessionKey(sessionID))
}

// MemoryProfileStore keeps profiles in process memory for dev and tests.
type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]UserProfile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]UserProfile)}
}

func (s *MemoryProfileStore) Set(ctx context.Context, sessionID string, profile UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[sessionID] = profile
	return nil
}

func (s *MemoryProfileStore) Get(ctx context.Context, sessionID string) (*UserProfile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	profile, ok := s.profiles[sessionID]
	if !ok {
		return nil, nil
	}
	return &profile, nil
}

func (s *MemoryProfileStore) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.profiles, sessionID)
	return nil
}
