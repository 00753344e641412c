package service

import (
	"context"
)

// GeolocationProvider looks up the country for an IP address against one
// external geolocation API.
type GeolocationProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// Lookup returns the country name for ip, or an error on any failure
	// (timeout, non-200, unparseable body, unsuccessful lookup).
	Lookup(ctx context.Context, ip string) (string, error)
}

// CountryCache stores resolved countries keyed by raw IP string. Entries
// expire after a configured TTL. Concurrent identical lookups may race and
// redundantly hit the provider; that is acceptable and implementations must
// not serialize cross-request access beyond protecting their own state.
type CountryCache interface {
	// Get returns the cached country for ip, evicting and missing when the
	// entry has expired.
	Get(ctx context.Context, ip string) (string, bool)

	// Set stores the country for ip with the cache's TTL.
	Set(ctx context.Context, ip, country string)
}

// CountryResolver resolves a shopper's country from an IP address. Every path
// resolves to some country string; it never fails.
type CountryResolver interface {
	Resolve(ctx context.Context, ip string) string
}
