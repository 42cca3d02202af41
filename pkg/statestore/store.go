package statestore

import (
	"context"
	"errors"
	"time"
)

// Sentinel errors for store operations.
var (
	// ErrUnknownState is returned when a token was never issued, expired,
	// or was already consumed.
	ErrUnknownState = errors.New("statestore: unknown or expired state token")

	// ErrEmptyToken is returned when an empty token is issued or consumed.
	ErrEmptyToken = errors.New("statestore: empty state token")

	// ErrClosed is returned when an operation is attempted on a closed store.
	ErrClosed = errors.New("statestore: closed")
)

// Store records issued state tokens so the callback can prove the flow was
// started by this host. Tokens are single use: a successful Consume removes
// the token, and a replayed callback fails with ErrUnknownState.
//
// TTL semantics for Issue:
//   - positive duration: the token expires after this duration
//   - zero: the store's configured default TTL applies
type Store interface {
	// Issue records a state token.
	Issue(ctx context.Context, token string, ttl time.Duration) error

	// Consume removes a previously issued token. Returns ErrUnknownState
	// if the token is absent, expired, or already consumed.
	Consume(ctx context.Context, token string) error
}
