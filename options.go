package loginwith

import (
	"log/slog"
	"net/http"
)

// Option configures a client at construction time.
type Option func(*options)

type options struct {
	httpClient *http.Client
	logger     *slog.Logger
}

// WithHTTPClient sets a custom HTTP client for all provider requests.
// Hosts use this to impose timeouts or inject custom transports; tests use
// it to route requests to in-process handlers.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// WithLogger sets a structured logger for flow diagnostics.
// The default logger discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.logger = log
	}
}

// AuthURLOption adjusts a single authorization URL.
type AuthURLOption func(*authURLOptions)

type authURLOptions struct {
	state  string
	scopes []string
}

// WithState attaches an anti-CSRF state token to the authorization URL.
// The host stores the token and hands it back via WithExpectedState on the
// callback.
func WithState(state string) AuthURLOption {
	return func(o *authURLOptions) {
		o.state = state
	}
}

// WithScopes overrides the configured scopes for this URL only; the
// client's stored scopes are left untouched.
func WithScopes(scopes ...string) AuthURLOption {
	return func(o *authURLOptions) {
		o.scopes = scopes
	}
}

// CallbackOption adjusts a single callback handling call.
type CallbackOption func(*callbackOptions)

type callbackOptions struct {
	expectedState string
}

// WithExpectedState enables state validation against the token originally
// issued for this flow. Validation happens before any network call; a
// mismatched callback never reaches the token endpoint.
func WithExpectedState(state string) CallbackOption {
	return func(o *callbackOptions) {
		o.expectedState = state
	}
}
