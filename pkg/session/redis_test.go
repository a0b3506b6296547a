package session

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devpulse/hackhub/pkg/observability"
)

func newTestRedisStore(t *testing.T, sessionID string) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)
	store, err := NewRedisStore(context.Background(), RedisOptions{
		Addr:      mr.Addr(),
		SessionID: sessionID,
		TTL:       time.Hour,
	}, observability.NewLogger(observability.ErrorLevel, io.Discard))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t, "s1")

	store.Set(ctx, KeyAuthToken, "tok-redis")

	value, ok := store.Get(ctx, KeyAuthToken)
	assert.True(t, ok)
	assert.Equal(t, "tok-redis", value)
}

func TestRedisStoreMiss(t *testing.T) {
	store := newTestRedisStore(t, "s1")

	_, ok := store.Get(context.Background(), "missing")
	assert.False(t, ok)
}

func TestRedisStoreDeleteAndClear(t *testing.T) {
	ctx := context.Background()
	store := newTestRedisStore(t, "s1")
	store.Set(ctx, "a", "1")
	store.Set(ctx, "b", "2")

	store.Delete(ctx, "a")
	_, ok := store.Get(ctx, "a")
	assert.False(t, ok)

	store.Clear(ctx)
	_, ok = store.Get(ctx, "b")
	assert.False(t, ok)
}

func TestRedisStoreSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	logger := observability.NewLogger(observability.ErrorLevel, io.Discard)

	first, err := NewRedisStore(ctx, RedisOptions{Addr: mr.Addr(), SessionID: "alpha"}, logger)
	require.NoError(t, err)
	defer first.Close()
	second, err := NewRedisStore(ctx, RedisOptions{Addr: mr.Addr(), SessionID: "beta"}, logger)
	require.NoError(t, err)
	defer second.Close()

	first.Set(ctx, KeyAuthToken, "alpha-token")

	_, ok := second.Get(ctx, KeyAuthToken)
	assert.False(t, ok)
}

func TestRedisStoreConnectFailure(t *testing.T) {
	_, err := NewRedisStore(context.Background(), RedisOptions{Addr: "127.0.0.1:1"}, observability.NewLogger(observability.ErrorLevel, io.Discard))
	assert.Error(t, err)
}
