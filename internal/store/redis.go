package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisStore keeps each collection as a plain string value and broadcasts
// change signals over pub/sub, so a second service process (another "tab")
// sees mutations made here.  This is the production store.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore wraps an already-connected client.  The caller owns client
// construction (see config.NewRedisClient) so the same connection can also
// serve the response cache and rate limiter.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	v, err := s.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *RedisStore) Put(ctx context.Context, key string, value []byte) error {
	if err := s.rdb.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *RedisStore) Notify(ctx context.Context, channel string) error {
	if err := s.rdb.Publish(ctx, channel, "").Err(); err != nil {
		return fmt.Errorf("redis publish %s: %w", channel, err)
	}
	return nil
}

// Watch subscribes to the pub/sub channel and forwards every message as a
// tick.  Ticks are delivered non-blocking so a stalled watcher cannot back
// up the subscription; coalesced ticks are fine because observers re-read
// the whole collection anyway.
func (s *RedisStore) Watch(ctx context.Context, channel string) (<-chan struct{}, error) {
	sub := s.rdb.Subscribe(ctx, channel)
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, fmt.Errorf("redis subscribe %s: %w", channel, err)
	}

	out := make(chan struct{}, 1)
	go func() {
		defer close(out)
		defer func() { _ = sub.Close() }()
		msgs := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-msgs:
				if !ok {
					return
				}
				select {
				case out <- struct{}{}:
				default:
				}
			}
		}
	}()
	return out, nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}
