// Package constants holds shared configuration constants.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects Google Cloud Pub/Sub.
	PubSubProviderGoogle = "google"

	// CacheProviderMemory selects the in-process TTL cache.
	CacheProviderMemory = "memory"
	// CacheProviderRedis selects the Redis-backed cache.
	CacheProviderRedis = "redis"
)
