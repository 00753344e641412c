package cache

import (
	"context"
	"log/slog"

	"shipway/config"
	"shipway/internal/domain/constants"
	"shipway/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// Params holds dependencies for the country cache, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// NewCountryCache creates a CountryCache based on configuration.
func NewCountryCache(params Params) (service.CountryCache, error) {
	cfg := params.Config.Geo.Cache

	switch cfg.Provider {
	case "", constants.CacheProviderMemory:
		return NewMemoryCache(cfg.TTL), nil

	case constants.CacheProviderRedis:
		if cfg.Addr == "" {
			return nil, errors.New("redis addr is required for redis cache provider")
		}

		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		})

		params.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return client.Close()
			},
		})

		return NewRedisCache(client, cfg.TTL, params.Logger), nil

	default:
		return nil, errors.Errorf("unknown cache provider: %s", cfg.Provider)
	}
}
