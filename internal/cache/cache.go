package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
)

var ErrMiss = errors.New("cache miss")

// Cache guarda respostas de disponibilidade por alguns segundos.
// Redis fora do ar nunca derruba a API: Get vira miss, Set vira no-op.
type Cache struct {
	client *redis.Client
}

func New(redisURL string) *Cache {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, cache disabled: %v", err)
		return &Cache{}
	}
	return &Cache{client: redis.NewClient(opts)}
}

func (c *Cache) Get(ctx context.Context, key string, dest any) error {
	if c == nil || c.client == nil {
		return ErrMiss
	}

	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return ErrMiss
		}
		return ErrMiss
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return ErrMiss
	}
	return nil
}

func (c *Cache) Set(ctx context.Context, key string, value any, ttl time.Duration) {
	if c == nil || c.client == nil {
		return
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return
	}

	if err := c.client.Set(ctx, key, payload, ttl).Err(); err != nil {
		log.Printf("cache set %s: %v", key, err)
	}
}

// InvalidateShop apaga toda disponibilidade cacheada de uma barbearia.
// Chamado após qualquer gravação que mexa na agenda.
func (c *Cache) InvalidateShop(ctx context.Context, shopID uint) {
	if c == nil || c.client == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%d:*", shopID)
	iter := c.client.Scan(ctx, 0, pattern, 0).Iterator()
	for iter.Next(ctx) {
		if err := c.client.Del(ctx, iter.Val()).Err(); err != nil {
			log.Printf("cache del %s: %v", iter.Val(), err)
		}
	}
}

func AvailabilityKey(shopID, serviceID, barberID uint, date string) string {
	return fmt.Sprintf("availability:%d:%d:%d:%s", shopID, serviceID, barberID, date)
}
