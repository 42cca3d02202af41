package statestore

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis is a Store backed by Redis, for hosts running more than one
// instance behind a load balancer: the callback may land on a different
// instance than the one that issued the state.
type Redis struct {
	client redis.UniversalClient
	opts   *redisOptions
}

// NewRedis creates a Redis-backed state store.
//
// Example:
//
//	client := redis.NewClient(&redis.Options{Addr: addr})
//	s := statestore.NewRedis(client, statestore.WithPrefix("myapp:oauth"))
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Redis{client: client, opts: o}
}

// Issue records a state token with the given TTL.
func (r *Redis) Issue(ctx context.Context, token string, ttl time.Duration) error {
	if token == "" {
		return ErrEmptyToken
	}
	if ttl <= 0 {
		ttl = r.opts.defaultTTL
	}
	return r.client.Set(ctx, r.key(token), "1", ttl).Err()
}

// Consume removes a previously issued token. GETDEL makes the check and the
// removal a single atomic step, so two racing callbacks cannot both pass.
func (r *Redis) Consume(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	if err := r.client.GetDel(ctx, r.key(token)).Err(); err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrUnknownState
		}
		return err
	}
	return nil
}

func (r *Redis) key(token string) string {
	return r.opts.prefix + ":" + token
}
