package geoip

import (
	"context"
	"log/slog"
	"regexp"
	"time"

	"shipway/config"
	"shipway/internal/domain/service"

	"go.uber.org/fx"
)

var ipv4Pattern = regexp.MustCompile(`^(?:(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)\.){3}(?:25[0-5]|2[0-4][0-9]|[01]?[0-9][0-9]?)$`)

// Params holds dependencies for the country resolver, injected by Fx.
type Params struct {
	fx.In

	Config *config.Config
	Cache  service.CountryCache
	Logger *slog.Logger
}

type resolver struct {
	providers []service.GeolocationProvider
	cache     service.CountryCache
	fallback  string
	timeout   time.Duration
	logger    *slog.Logger
}

// NewCountryResolver creates a resolver that tries ipapi.co, then ipwho.is,
// and falls back to the configured country when both fail.
func NewCountryResolver(params Params) service.CountryResolver {
	return newResolver(
		[]service.GeolocationProvider{NewIPAPIProvider(), NewIPWhoisProvider()},
		params.Cache,
		params.Config.Geo.FallbackCountry,
		params.Config.Geo.LookupTimeout,
		params.Logger,
	)
}

func newResolver(
	providers []service.GeolocationProvider,
	cache service.CountryCache,
	fallback string,
	timeout time.Duration,
	logger *slog.Logger,
) service.CountryResolver {
	return &resolver{
		providers: providers,
		cache:     cache,
		fallback:  fallback,
		timeout:   timeout,
		logger:    logger,
	}
}

// Resolve never fails: it degrades to the fallback country when the IP is not
// a public IPv4 address or when every provider errors. Resolved values are
// cached, the fallback included, so repeated misbehaving IPs stay cheap.
func (r *resolver) Resolve(ctx context.Context, ip string) string {
	if country, ok := r.cache.Get(ctx, ip); ok {
		return country
	}

	// Loopback, private-network and IPv6 addresses are not worth a provider
	// round trip. 8.8.8.8 is kept as a probe address for local development.
	if !ipv4Pattern.MatchString(ip) && ip != "8.8.8.8" {
		return r.fallback
	}

	for _, provider := range r.providers {
		country, err := r.lookup(ctx, provider, ip)
		if err != nil {
			r.logger.Debug("geolocation lookup failed",
				slog.String("provider", provider.Name()),
				slog.String("ip", ip),
				slog.Any("error", err),
			)

			continue
		}

		r.cache.Set(ctx, ip, country)

		return country
	}

	r.cache.Set(ctx, ip, r.fallback)

	return r.fallback
}

func (r *resolver) lookup(ctx context.Context, provider service.GeolocationProvider, ip string) (string, error) {
	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	return provider.Lookup(lookupCtx, ip)
}
