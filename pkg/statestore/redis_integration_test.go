//go:build integration

package statestore_test

import (
	"context"
	"os"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/loginwith/loginwith/pkg/statestore"
)

const testRedisURL = "redis://localhost:6379/0"

func newTestRedisClient(t *testing.T) goredis.UniversalClient {
	t.Helper()

	url := os.Getenv("REDIS_URL")
	if url == "" {
		url = testRedisURL
	}

	opts, err := goredis.ParseURL(url)
	require.NoError(t, err, "invalid Redis URL")
	client := goredis.NewClient(opts)

	require.NoError(t, client.Ping(context.Background()).Err(), "failed to connect to Redis")

	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestRedis_Issue(t *testing.T) {
	t.Parallel()

	t.Run("issue then consume", func(t *testing.T) {
		t.Parallel()
		s := statestore.NewRedis(newTestRedisClient(t), statestore.WithPrefix("test-issue"))

		ctx := context.Background()
		require.NoError(t, s.Issue(ctx, "tok", time.Minute))
		require.NoError(t, s.Consume(ctx, "tok"))
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		s := statestore.NewRedis(newTestRedisClient(t), statestore.WithPrefix("test-issue-empty"))

		require.ErrorIs(t, s.Issue(context.Background(), "", time.Minute), statestore.ErrEmptyToken)
	})

	t.Run("zero TTL uses default", func(t *testing.T) {
		t.Parallel()
		s := statestore.NewRedis(newTestRedisClient(t),
			statestore.WithPrefix("test-issue-default-ttl"),
			statestore.WithRedisDefaultTTL(100*time.Millisecond),
		)

		ctx := context.Background()
		require.NoError(t, s.Issue(ctx, "tok", 0))

		time.Sleep(200 * time.Millisecond)

		require.ErrorIs(t, s.Consume(ctx, "tok"), statestore.ErrUnknownState)
	})
}

func TestRedis_Consume(t *testing.T) {
	t.Parallel()

	t.Run("tokens are single use", func(t *testing.T) {
		t.Parallel()
		s := statestore.NewRedis(newTestRedisClient(t), statestore.WithPrefix("test-single-use"))

		ctx := context.Background()
		require.NoError(t, s.Issue(ctx, "tok", time.Minute))
		require.NoError(t, s.Consume(ctx, "tok"))
		require.ErrorIs(t, s.Consume(ctx, "tok"), statestore.ErrUnknownState)
	})

	t.Run("unknown token", func(t *testing.T) {
		t.Parallel()
		s := statestore.NewRedis(newTestRedisClient(t), statestore.WithPrefix("test-unknown"))

		require.ErrorIs(t, s.Consume(context.Background(), "never-issued"), statestore.ErrUnknownState)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		t.Parallel()
		s := statestore.NewRedis(newTestRedisClient(t), statestore.WithPrefix("test-expired"))

		ctx := context.Background()
		require.NoError(t, s.Issue(ctx, "tok", 50*time.Millisecond))

		time.Sleep(100 * time.Millisecond)

		require.ErrorIs(t, s.Consume(ctx, "tok"), statestore.ErrUnknownState)
	})

	t.Run("empty token", func(t *testing.T) {
		t.Parallel()
		s := statestore.NewRedis(newTestRedisClient(t), statestore.WithPrefix("test-consume-empty"))

		require.ErrorIs(t, s.Consume(context.Background(), ""), statestore.ErrEmptyToken)
	})
}

func TestRedis_Prefix(t *testing.T) {
	t.Parallel()

	t.Run("different prefixes are isolated", func(t *testing.T) {
		t.Parallel()
		client := newTestRedisClient(t)
		s1 := statestore.NewRedis(client, statestore.WithPrefix("test-prefix-iso1"))
		s2 := statestore.NewRedis(client, statestore.WithPrefix("test-prefix-iso2"))

		ctx := context.Background()
		require.NoError(t, s1.Issue(ctx, "tok", time.Minute))
		require.NoError(t, s2.Issue(ctx, "tok", time.Minute))

		// Consuming in one keyspace must not touch the other.
		require.NoError(t, s1.Consume(ctx, "tok"))
		require.ErrorIs(t, s1.Consume(ctx, "tok"), statestore.ErrUnknownState)
		require.NoError(t, s2.Consume(ctx, "tok"))
	})
}
