package httpauth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/loginwith/loginwith/pkg/statestore"
)

// Option configures a Flow.
type Option func(*Flow)

// WithStateStore replaces the in-memory state store. Hosts running more
// than one instance should pass a statestore.Redis.
func WithStateStore(s statestore.Store) Option {
	return func(f *Flow) {
		if s != nil {
			f.states = s
		}
	}
}

// WithLogger sets the structured logger for flow events.
func WithLogger(log *slog.Logger) Option {
	return func(f *Flow) {
		if log != nil {
			f.log = log
		}
	}
}

// WithStateTTL bounds how long a user may sit on the provider's consent
// page before the callback is rejected.
func WithStateTTL(ttl time.Duration) Option {
	return func(f *Flow) {
		if ttl > 0 {
			f.ttl = ttl
		}
	}
}

// WithProviderResolver replaces how the provider name is read from the
// request, for hosts whose routers do not populate path values.
func WithProviderResolver(resolve func(*http.Request) string) Option {
	return func(f *Flow) {
		if resolve != nil {
			f.resolve = resolve
		}
	}
}

// OnSuccess sets the handler invoked with the normalized user.
func OnSuccess(h SuccessHandler) Option {
	return func(f *Flow) {
		if h != nil {
			f.success = h
		}
	}
}

// OnError sets the handler invoked with flow failures.
func OnError(h ErrorHandler) Option {
	return func(f *Flow) {
		f.failure = h
	}
}
