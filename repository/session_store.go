package repository

import (
	"context"
	"sync"

	"github.com/redis/go-redis/v9"
)

// SessionStore records issued session identifiers. Identifiers never
// expire; they only exist to scope cart storage.
type SessionStore interface {
	Exists(ctx context.Context, sessionID string) (bool, error)
	Put(ctx context.Context, sessionID string) error
}

type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (s *RedisSessionStore) key(sessionID string) string {
	return "session_" + sessionID
}

func (s *RedisSessionStore) Exists(ctx context.Context, sessionID string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(sessionID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *RedisSessionStore) Put(ctx context.Context, sessionID string) error {
	return s.client.Set(ctx, s.key(sessionID), "1", 0).Err()
}

// MemorySessionStore is an in-memory SessionStore used in tests and
// single-process development setups.
type MemorySessionStore struct {
	mu  sync.RWMutex
	ids map[string]struct{}
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{ids: make(map[string]struct{})}
}

func (s *MemorySessionStore) Exists(_ context.Context, sessionID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.ids[sessionID]
	return ok, nil
}

func (s *MemorySessionStore) Put(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ids[sessionID] = struct{}{}
	return nil
}
