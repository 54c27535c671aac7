package store

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	now := time.Unix(1_700_000_000, 0)
	s := NewMemoryStore()
	s.now = func() time.Time { return now }

	consumed, err := s.IsConsumed(ctx, "req-1")
	require.NoError(t, err)
	assert.False(t, consumed)

	require.NoError(t, s.MarkConsumed(ctx, "req-1", time.Minute))

	consumed, err = s.IsConsumed(ctx, "req-1")
	require.NoError(t, err)
	assert.True(t, consumed)

	consumed, err = s.IsConsumed(ctx, "req-2")
	require.NoError(t, err)
	assert.False(t, consumed)

	now = now.Add(time.Minute)
	consumed, err = s.IsConsumed(ctx, "req-1")
	require.NoError(t, err)
	assert.True(t, consumed, "still consumed at the expiry instant")

	now = now.Add(time.Second)
	consumed, err = s.IsConsumed(ctx, "req-1")
	require.NoError(t, err)
	assert.False(t, consumed)

	require.NoError(t, s.MarkConsumed(ctx, "req-3", time.Minute))
	assert.Equal(t, 1, s.Len(), "expired ids are swept on write")
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client)

	consumed, err := s.IsConsumed(ctx, "req-1")
	require.NoError(t, err)
	assert.False(t, consumed)

	require.NoError(t, s.MarkConsumed(ctx, "req-1", time.Minute))
	assert.True(t, mr.Exists(DefaultRedisPrefix+"req-1"))
	assert.Equal(t, time.Minute, mr.TTL(DefaultRedisPrefix+"req-1"))

	consumed, err = s.IsConsumed(ctx, "req-1")
	require.NoError(t, err)
	assert.True(t, consumed)

	mr.FastForward(time.Minute + time.Second)
	consumed, err = s.IsConsumed(ctx, "req-1")
	require.NoError(t, err)
	assert.False(t, consumed)
}

func TestRedisStore_Unavailable(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { _ = client.Close() })
	mr.Close()

	s := NewRedisStore(client)
	_, err := s.IsConsumed(context.Background(), "req-1")
	assert.Error(t, err)
	assert.Error(t, s.MarkConsumed(context.Background(), "req-1", time.Minute))
}
