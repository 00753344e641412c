package cache

import (
	"context"
	"log/slog"
	"time"

	"shipway/internal/domain/service"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "geo:country:"

// redisCache stores resolved countries in Redis so multiple instances share
// one geolocation budget. Failures degrade to cache misses; the resolver
// falls through to its providers.
type redisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisCache creates a Redis-backed country cache.
func NewRedisCache(client *redis.Client, ttl time.Duration, logger *slog.Logger) service.CountryCache {
	return &redisCache{client: client, ttl: ttl, logger: logger}
}

func (c *redisCache) Get(ctx context.Context, ip string) (string, bool) {
	country, err := c.client.Get(ctx, redisKeyPrefix+ip).Result()
	if err != nil {
		if err != redis.Nil {
			c.logger.Warn("country cache read failed", slog.Any("error", err))
		}

		return "", false
	}

	return country, true
}

func (c *redisCache) Set(ctx context.Context, ip, country string) {
	if err := c.client.Set(ctx, redisKeyPrefix+ip, country, c.ttl).Err(); err != nil {
		c.logger.Warn("country cache write failed", slog.Any("error", err))
	}
}
