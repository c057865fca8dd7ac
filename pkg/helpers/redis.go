package helpers

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient initializes a redis client
func NewRedisClient(addr, password string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
}

// RedisStateStore keeps short-lived OAuth state values. Each value can be
// consumed once.
type RedisStateStore struct {
	rdb    *redis.Client
	prefix string
}

func NewRedisStateStore(rdb *redis.Client) *RedisStateStore {
	return &RedisStateStore{rdb: rdb, prefix: "oauth:state:"}
}

func (s *RedisStateStore) Save(ctx context.Context, state, provider string, ttl time.Duration) error {
	return s.rdb.Set(ctx, s.prefix+state, provider, ttl).Err()
}

// Consume returns the provider the state was issued for and deletes it.
// ok is false when the state is unknown or expired.
func (s *RedisStateStore) Consume(ctx context.Context, state string) (string, bool, error) {
	provider, err := s.rdb.GetDel(ctx, s.prefix+state).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return provider, true, nil
}
