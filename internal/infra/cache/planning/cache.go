package planning

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache кеш собранных представлений планинга в Redis.
// Ключ - тройка (салон, режим, дата): собранная сетка дорогая в построении,
// но полностью детерминирована по входным данным, поэтому её можно отдавать
// из кеша до первой мутации записей салона.
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кеш планинга поверх клиента Redis
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// viewKey строит ключ представления планинга
func viewKey(salonID int64, mode, date string) string {
	return fmt.Sprintf("planning:%d:%s:%s", salonID, mode, date)
}

// salonPattern паттерн всех ключей салона для инвалидации
func salonPattern(salonID int64) string {
	return fmt.Sprintf("planning:%d:*", salonID)
}

// GetView возвращает сериализованное представление из кеша.
// Второй результат false - промах кеша (не ошибка).
func (c *Cache) GetView(ctx context.Context, salonID int64, mode, date string) ([]byte, bool, error) {
	data, err := c.client.Get(ctx, viewKey(salonID, mode, date)).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCacheGet, err)
	}
	return data, true, nil
}

// SetView сохраняет сериализованное представление с TTL
func (c *Cache) SetView(ctx context.Context, salonID int64, mode, date string, data []byte) error {
	if err := c.client.Set(ctx, viewKey(salonID, mode, date), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheSet, err)
	}
	return nil
}

// InvalidateSalon удаляет все закешированные представления салона.
// Вызывается после любой мутации записей (создание, отмена, смена статуса).
func (c *Cache) InvalidateSalon(ctx context.Context, salonID int64) error {
	iter := c.client.Scan(ctx, 0, salonPattern(salonID), 100).Iterator()

	keys := make([]string, 0)
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("%w: scan keys: %v", ErrCacheInvalidate, err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("%w: delete keys: %v", ErrCacheInvalidate, err)
	}

	return nil
}
