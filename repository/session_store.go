package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SessionStore holds the server-side half of a login session. A session that
// is not in the store is dead regardless of what the client presents.
type SessionStore interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}

type redisSessionStore struct {
	client *redis.Client
}

// NewRedisSessionStore creates a SessionStore backed by redis.
func NewRedisSessionStore(client *redis.Client) SessionStore {
	return &redisSessionStore{client: client}
}

func (s *redisSessionStore) key(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (s *redisSessionStore) Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	return s.client.Set(ctx, s.key(sessionID), userID, ttl).Err()
}

// Get returns the owning user ID, or "" when the session does not exist.
func (s *redisSessionStore) Get(ctx context.Context, sessionID string) (string, error) {
	val, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

// Delete is idempotent; removing an absent session is not an error.
func (s *redisSessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}
