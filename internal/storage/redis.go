package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const redisPingTimeout = 3 * time.Second

// RedisStorage общее хранилище для нескольких экземпляров клиента
type RedisStorage struct {
	rdb    *goredis.Client
	prefix string
}

func NewRedisStorage(ctx context.Context, redisURL, prefix string) (*RedisStorage, error) {
	opts, err := goredis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("неверный адрес redis: %w", err)
	}

	rdb := goredis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, redisPingTimeout)
	defer cancel()

	if errPing := rdb.Ping(pingCtx).Err(); errPing != nil {
		_ = rdb.Close()

		return nil, fmt.Errorf("redis недоступен: %w", errPing)
	}

	return &RedisStorage{rdb: rdb, prefix: prefix}, nil
}

func (s *RedisStorage) Get(ctx context.Context, key string) (string, error) {
	value, err := s.rdb.Get(ctx, s.prefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", ErrNotFound
		}

		return "", fmt.Errorf("redis GET: %w", err)
	}

	return value, nil
}

func (s *RedisStorage) Set(ctx context.Context, key, value string) error {
	if err := s.rdb.Set(ctx, s.prefix+key, value, 0).Err(); err != nil {
		return fmt.Errorf("redis SET: %w", err)
	}

	return nil
}

func (s *RedisStorage) Remove(ctx context.Context, key string) error {
	if err := s.rdb.Del(ctx, s.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis DEL: %w", err)
	}

	return nil
}

func (s *RedisStorage) Close() error {
	return s.rdb.Close()
}
