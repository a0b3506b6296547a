package session

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/devpulse/hackhub/pkg/observability"
)

// RedisStore is a Store backed by Redis, for deployments where the session
// must survive process restarts (the CLI between invocations, or a
// long-running kiosk dashboard). Keys are namespaced per session ID so
// independent sessions never collide.
type RedisStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *observability.Logger
}

// RedisOptions configures a RedisStore.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	SessionID string
	// TTL bounds the lifetime of every key; zero means no expiry.
	TTL time.Duration
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions, logger *observability.Logger) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return &RedisStore{
		client: client,
		prefix: fmt.Sprintf("hackhub:session:%s:", opts.SessionID),
		ttl:    opts.TTL,
		logger: logger,
	}, nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Get returns the stored value. Backend errors are logged and reported as a
// miss so callers fall through to their next data source.
func (s *RedisStore) Get(ctx context.Context, key string) (string, bool) {
	value, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		return "", false
	}
	if err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("session read failed, treating as miss")
		return "", false
	}
	return value, true
}

// Set stores a value under the key, refreshing the session TTL.
func (s *RedisStore) Set(ctx context.Context, key, value string) {
	if err := s.client.Set(ctx, s.prefix+key, value, s.ttl).Err(); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("session write failed")
	}
}

// Delete removes the given keys.
func (s *RedisStore) Delete(ctx context.Context, keys ...string) {
	prefixed := make([]string, len(keys))
	for i, key := range keys {
		prefixed[i] = s.prefix + key
	}
	if err := s.client.Del(ctx, prefixed...).Err(); err != nil {
		s.logger.WithError(err).Warn("session delete failed")
	}
}

// Clear removes every key in this session's namespace.
func (s *RedisStore) Clear(ctx context.Context) {
	keys, err := s.client.Keys(ctx, s.prefix+"*").Result()
	if err != nil {
		s.logger.WithError(err).Warn("session clear failed")
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		s.logger.WithError(err).Warn("session clear failed")
	}
}
