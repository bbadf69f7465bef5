package cache

import (
	"context"
	"testing"
	"time"

	"career-compass/internal/config"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedis_DisabledIsNoop(t *testing.T) {
	r := NewRedis(config.CacheConfig{Enabled: false, TTL: time.Minute}, nil)
	ctx := context.Background()

	assert.False(t, r.Available())
	require.ErrorIs(t, r.Ping(ctx), ErrUnavailable)

	var out map[string]int
	found, err := r.GetJSON(ctx, "k", &out)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, 0))
	require.NoError(t, r.Close())
}

func TestRedis_NilReceiver(t *testing.T) {
	var r *Redis
	assert.False(t, r.Available())
	found, err := r.GetJSON(context.Background(), "k", &struct{}{})
	require.NoError(t, err)
	assert.False(t, found)
	require.NoError(t, r.Close())
}

func TestRedis_UnreachableServerReportsError(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	r := newRedisWithClient(client, time.Minute, nil)
	t.Cleanup(func() { _ = r.Close() })

	ctx := context.Background()
	assert.True(t, r.Available())

	var out map[string]int
	found, err := r.GetJSON(ctx, "k", &out)
	require.Error(t, err)
	assert.False(t, found)
	require.Error(t, r.SetJSON(ctx, "k", map[string]int{"a": 1}, 0))
	assert.True(t, r.warnedUnavailable.Load())
}
