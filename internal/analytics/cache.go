package analytics

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheKey = "analytics:dashboard"

// Cache keeps the last computed snapshot in redis. It is best-effort on
// both sides: a miss or a redis failure just forces a recompute.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

func (c *Cache) Get(ctx context.Context) (*Dashboard, bool) {
	payload, err := c.client.Get(ctx, cacheKey).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Printf("analytics cache read failed: %v", err)
		}
		return nil, false
	}

	var d Dashboard
	if err := json.Unmarshal(payload, &d); err != nil {
		log.Printf("analytics cache payload corrupt: %v", err)
		return nil, false
	}

	return &d, true
}

func (c *Cache) Set(ctx context.Context, d *Dashboard, ttl time.Duration) {
	payload, err := json.Marshal(d)
	if err != nil {
		log.Printf("analytics cache encode failed: %v", err)
		return
	}

	if err := c.client.Set(ctx, cacheKey, payload, ttl).Err(); err != nil {
		log.Printf("analytics cache write failed: %v", err)
	}
}
