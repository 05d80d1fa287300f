package session

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store tracks live session IDs so logout can revoke a session server-side.
type Store interface {
	Put(ctx context.Context, sid string, ttl time.Duration) error
	Exists(ctx context.Context, sid string) (bool, error)
	Delete(ctx context.Context, sid string) error
}

const redisKeyPrefix = "sess:"

type redisStore struct {
	client *redis.Client
}

// NewRedisStore backs sessions with Redis, so they survive restarts and are
// shared if more than one instance ever runs.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) Put(ctx context.Context, sid string, ttl time.Duration) error {
	return s.client.Set(ctx, redisKeyPrefix+sid, "1", ttl).Err()
}

func (s *redisStore) Exists(ctx context.Context, sid string) (bool, error) {
	n, err := s.client.Exists(ctx, redisKeyPrefix+sid).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *redisStore) Delete(ctx context.Context, sid string) error {
	return s.client.Del(ctx, redisKeyPrefix+sid).Err()
}

type memoryEntry struct {
	expiresAt time.Time
}

// memoryStore is the fallback when Redis is not configured. Sessions are
// lost on restart, which only forces a re-login.
type memoryStore struct {
	mu       sync.RWMutex
	sessions map[string]memoryEntry
	once     sync.Once
}

func NewMemoryStore() Store {
	return &memoryStore{sessions: make(map[string]memoryEntry)}
}

func (s *memoryStore) startJanitor() {
	go func() {
		ticker := time.NewTicker(5 * time.Minute)
		for range ticker.C {
			now := time.Now()
			s.mu.Lock()
			for sid, entry := range s.sessions {
				if now.After(entry.expiresAt) {
					delete(s.sessions, sid)
				}
			}
			s.mu.Unlock()
		}
	}()
}

func (s *memoryStore) Put(_ context.Context, sid string, ttl time.Duration) error {
	s.once.Do(s.startJanitor)
	s.mu.Lock()
	s.sessions[sid] = memoryEntry{expiresAt: time.Now().Add(ttl)}
	s.mu.Unlock()
	return nil
}

func (s *memoryStore) Exists(_ context.Context, sid string) (bool, error) {
	s.mu.RLock()
	entry, ok := s.sessions[sid]
	s.mu.RUnlock()
	if !ok {
		return false, nil
	}
	if time.Now().After(entry.expiresAt) {
		s.mu.Lock()
		delete(s.sessions, sid)
		s.mu.Unlock()
		return false, nil
	}
	return true, nil
}

func (s *memoryStore) Delete(_ context.Context, sid string) error {
	s.mu.Lock()
	delete(s.sessions, sid)
	s.mu.Unlock()
	return nil
}
