package cache

import "time"

// DefaultRedisPrefix namespaces keys when no prefix is configured.
const DefaultRedisPrefix = "glossary"

// RedisOption configures the Redis cache.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		defaultTTL: time.Hour,
		prefix:     DefaultRedisPrefix,
	}
}

// WithRedisDefaultTTL sets the expiration used when Set gets a zero TTL.
// Default: 1 hour.
func WithRedisDefaultTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.defaultTTL = d
	}
}

// WithPrefix sets the key prefix; keys are stored as "{prefix}:{key}".
// An empty prefix keeps DefaultRedisPrefix.
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}
