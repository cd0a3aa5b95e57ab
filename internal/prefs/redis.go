package prefs

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	rdb    *redis.Client
	prefix string
}

// NewRedis создаёт хранилище поверх Redis (например, redis://:pass@host:6379/0).
// Если prefix пустой — используется "odysee:prefs:".
func NewRedis(ctx context.Context, redisURL, prefix string) (Store, error) {
	const op = "prefs/NewRedis"

	if prefix == "" {
		prefix = "odysee:prefs:"
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	// Fail-fast на старте.
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &redisStore{rdb: rdb, prefix: prefix}, nil
}

func (r *redisStore) key(k string) string { return r.prefix + k }

func (r *redisStore) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "prefs/redis/Get"

	v, err := r.rdb.Get(ctx, r.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}

	return v, true, nil
}

func (r *redisStore) Set(ctx context.Context, key, value string) error {
	const op = "prefs/redis/Set"

	var err error
	if value == "" {
		err = r.rdb.Del(ctx, r.key(key)).Err()
	} else {
		err = r.rdb.Set(ctx, r.key(key), value, 0).Err()
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (r *redisStore) Close() error { return r.rdb.Close() }
