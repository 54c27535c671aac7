package store

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/citizenchain/citizenauth/ports"
)

// DefaultRedisPrefix namespaces consumed request ids in Redis
const DefaultRedisPrefix = "citizenauth:consumed:"

// RedisStore is a Redis implementation of the ReplayStore interface.
// Entries expire through the key TTL, so ids are shared by every process
// pointed at the same Redis.
type RedisStore struct {
	client redis.UniversalClient
	prefix string
}

// NewRedisStore creates a new Redis replay store
func NewRedisStore(client redis.UniversalClient) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: DefaultRedisPrefix,
	}
}

var _ ports.ReplayStore = (*RedisStore)(nil)

// MarkConsumed records requestID in Redis for ttl
func (s *RedisStore) MarkConsumed(ctx context.Context, requestID string, ttl time.Duration) error {
	key := s.prefix + requestID

	if err := s.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to mark request id consumed: %w", err)
	}

	return nil
}

// IsConsumed checks whether requestID is recorded in Redis
func (s *RedisStore) IsConsumed(ctx context.Context, requestID string) (bool, error) {
	key := s.prefix + requestID

	val, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check consumed request id: %w", err)
	}

	return val > 0, nil
}
