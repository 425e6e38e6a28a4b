package storage

import (
	"context"
	"errors"
	"fmt"
)

// Ключи, под которыми клиент хранит состояние авторизации
const (
	TokenKey = "token"
	UserKey  = "user"
)

const (
	DriverFile   = "file"
	DriverMemory = "memory"
	DriverRedis  = "redis"
)

var ErrNotFound = errors.New("ключ не найден")

// Storage персистентное key-value хранилище клиента
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
}

type Options struct {
	Driver   string
	Path     string
	RedisURL string
	Prefix   string
}

// Open создаёт хранилище по имени драйвера. Возвращаемая функция закрывает соединения драйвера.
func Open(ctx context.Context, opts Options) (Storage, func() error, error) {
	noop := func() error { return nil }

	switch opts.Driver {
	case DriverFile, "":
		return NewFileStorage(opts.Path), noop, nil
	case DriverMemory:
		return NewMemoryStorage(), noop, nil
	case DriverRedis:
		s, err := NewRedisStorage(ctx, opts.RedisURL, opts.Prefix)
		if err != nil {
			return nil, noop, err
		}

		return s, s.Close, nil
	default:
		return nil, noop, fmt.Errorf("неизвестный драйвер хранилища: %s", opts.Driver)
	}
}
