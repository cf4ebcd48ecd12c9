package draft

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"
)

// Redis implements Store on a Redis instance. Draft entries carry no
// TTL: a draft lives until the session saves or abandons it.
type Redis struct {
	client *redis.Client
}

// NewRedis creates a Redis-backed draft store.
func NewRedis(client *redis.Client) *Redis {
	return &Redis{client: client}
}

func (s *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return val, true, nil
}

func (s *Redis) Set(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, key, value, 0).Err()
}

func (s *Redis) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, key).Err()
}

// Clear removes every key under prefix using SCAN, so it never blocks
// the server the way KEYS would.
func (s *Redis) Clear(ctx context.Context, prefix string) error {
	iter := s.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}
