// Package prefs реализует хранилище пользовательских предпочтений на базе redis.
//
// Хранилище — это долговременное отображение ключ -> строка. Отсутствие ключа
// не является ошибкой: Get возвращает признак found. Каждый ключ независим,
// транзакций между ключами нет.
package prefs

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/pricexhq/pricex/internal/config"
)

// Store инкапсулирует подключение к redis.
type Store struct {
	Db *redis.Client
}

// InitServer подключается к redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Store, error) {
	const op = "prefs.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Store{Db: db}, nil
}

// Get возвращает значение по ключу и признак его наличия.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	const op = "prefs.Get"
	val, err := s.Db.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

// Set безусловно перезаписывает значение по ключу. Запись завершена
// до возврата из вызова.
func (s *Store) Set(ctx context.Context, key, value string) error {
	const op = "prefs.Set"
	if err := s.Db.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Remove удаляет ключ. Отсутствующий ключ не считается ошибкой.
func (s *Store) Remove(ctx context.Context, key string) error {
	const op = "prefs.Remove"
	if err := s.Db.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
