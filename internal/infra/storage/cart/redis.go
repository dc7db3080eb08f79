package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisStorage хранилище корзин в Redis, каждая запись продлевает TTL корзины
type RedisStorage struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRedisStorage создает хранилище поверх клиента Redis
// ttl = 0 означает хранение без срока жизни
func NewRedisStorage(client redis.Cmdable, ttl time.Duration) *RedisStorage {
	return &RedisStorage{client: client, ttl: ttl}
}

// Load читает сериализованную корзину, отсутствие ключа не ошибка
func (r *RedisStorage) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: key=%s: %v", ErrLoad, key, err)
	}
	return data, nil
}

// Save записывает корзину целиком
func (r *RedisStorage) Save(ctx context.Context, key string, data []byte) error {
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return fmt.Errorf("%w: key=%s: %v", ErrSave, key, err)
	}
	return nil
}
