package statestore

import "time"

// defaultTTL bounds how long an authorization redirect stays answerable.
const defaultTTL = 10 * time.Minute

type memoryOptions struct {
	defaultTTL      time.Duration
	cleanupInterval time.Duration
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		defaultTTL:      defaultTTL,
		cleanupInterval: time.Minute,
	}
}

// MemoryOption configures the in-memory store.
type MemoryOption func(*memoryOptions)

// WithDefaultTTL sets the TTL applied when Issue is called with zero.
func WithDefaultTTL(ttl time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		if ttl > 0 {
			o.defaultTTL = ttl
		}
	}
}

// WithCleanupInterval sets how often expired tokens are swept.
// Zero disables the janitor; expired tokens are still rejected on Consume.
func WithCleanupInterval(interval time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = interval
	}
}

type redisOptions struct {
	prefix     string
	defaultTTL time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		prefix:     "oauthstate",
		defaultTTL: defaultTTL,
	}
}

// RedisOption configures the Redis-backed store.
type RedisOption func(*redisOptions)

// WithPrefix sets the key prefix, isolating tokens from other keyspaces
// sharing the Redis instance.
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}

// WithRedisDefaultTTL sets the TTL applied when Issue is called with zero.
func WithRedisDefaultTTL(ttl time.Duration) RedisOption {
	return func(o *redisOptions) {
		if ttl > 0 {
			o.defaultTTL = ttl
		}
	}
}
