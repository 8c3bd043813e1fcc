// Package cache wraps the Redis client. Every method is safe on a nil or
// unconfigured Store, so Redis stays optional: without it idempotency keys
// are simply not enforced.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shashiranjanraj/storefront/config"
)

// Store is a thin Redis wrapper.
type Store struct {
	rdb *redis.Client
}

// Connect dials Redis at REDIS_ADDR and pings it. An empty address yields a
// disabled Store and no error.
func Connect(ctx context.Context) (*Store, error) {
	addr := config.RedisAddr()
	if addr == "" {
		return &Store{}, nil
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: config.RedisPassword(),
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return &Store{}, fmt.Errorf("cache: redis ping: %w", err)
	}
	return &Store{rdb: rdb}, nil
}

// New wraps an existing client.
func New(rdb *redis.Client) *Store { return &Store{rdb: rdb} }

// Enabled reports whether a Redis client is configured.
func (s *Store) Enabled() bool { return s != nil && s.rdb != nil }

// Get unmarshals the value at key into dest. Returns false on miss or error.
func (s *Store) Get(ctx context.Context, key string, dest any) bool {
	if !s.Enabled() {
		return false
	}
	val, err := s.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(val, dest) == nil
}

// Set stores value as JSON for ttl.
func (s *Store) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, key, data, ttl).Err()
}

// Del removes keys.
func (s *Store) Del(ctx context.Context, keys ...string) error {
	if !s.Enabled() {
		return nil
	}
	return s.rdb.Del(ctx, keys...).Err()
}

// ErrReserved is returned by Reserve when the key is already held.
var ErrReserved = errors.New("cache: key already reserved")

// Reserve claims key for ttl with SET NX. A disabled Store always succeeds.
func (s *Store) Reserve(ctx context.Context, key string, ttl time.Duration) error {
	if !s.Enabled() {
		return nil
	}
	ok, err := s.rdb.SetNX(ctx, key, time.Now().Unix(), ttl).Result()
	if err != nil {
		return fmt.Errorf("cache: reserve %s: %w", key, err)
	}
	if !ok {
		return ErrReserved
	}
	return nil
}

// Release gives up a reservation.
func (s *Store) Release(ctx context.Context, key string) error {
	return s.Del(ctx, key)
}

// Close closes the client.
func (s *Store) Close() error {
	if !s.Enabled() {
		return nil
	}
	return s.rdb.Close()
}
