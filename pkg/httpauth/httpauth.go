package httpauth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/loginwith/loginwith"
	"github.com/loginwith/loginwith/pkg/logger"
	"github.com/loginwith/loginwith/pkg/statestore"
)

// SuccessHandler receives the normalized user after a completed callback.
// The host typically creates its session here and redirects.
type SuccessHandler func(w http.ResponseWriter, r *http.Request, user *loginwith.User)

// ErrorHandler receives every flow failure together with the request.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// Flow mounts the two ends of the authorization-code flow as plain
// net/http handlers: Begin issues the state token and redirects out,
// Callback verifies it and resolves the user.
type Flow struct {
	clients map[string]*loginwith.Client
	states  statestore.Store
	log     *slog.Logger
	ttl     time.Duration
	resolve func(*http.Request) string
	success SuccessHandler
	failure ErrorHandler
}

// New creates a Flow over the given clients (as returned by loginwith.New).
// Without options it stores states in memory, discards logs, responds to
// success with the user as JSON, and maps errors onto HTTP status codes.
func New(clients map[string]*loginwith.Client, opts ...Option) *Flow {
	f := &Flow{
		clients: clients,
		states:  statestore.NewMemory(),
		log:     logger.NewNoop(),
		ttl:     10 * time.Minute,
		resolve: resolveProvider,
		success: respondJSON,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.failure == nil {
		f.failure = f.respondError
	}
	return f
}

// Begin starts the flow: it generates a state token, records it in the
// state store, and redirects the user to the provider's authorization page.
func (f *Flow) Begin(w http.ResponseWriter, r *http.Request) {
	client, ok := f.clients[f.resolve(r)]
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctx := WithProvider(r.Context(), client.Provider().Name())
	r = r.WithContext(ctx)

	token, err := loginwith.GenerateState()
	if err != nil {
		f.log.ErrorContext(ctx, "failed to generate state token", slog.String("error", err.Error()))
		f.failure(w, r, err)
		return
	}
	if err := f.states.Issue(ctx, token, f.ttl); err != nil {
		f.log.ErrorContext(ctx, "failed to store state token", slog.String("error", err.Error()))
		f.failure(w, r, err)
		return
	}

	http.Redirect(w, r, client.AuthURL(loginwith.WithState(token)), http.StatusFound)
}

// Callback finishes the flow. The state token from the query must have been
// issued by Begin and not yet consumed; denial and missing-code callbacks
// are handed to the client untouched so they surface with their proper
// error codes.
func (f *Flow) Callback(w http.ResponseWriter, r *http.Request) {
	client, ok := f.clients[f.resolve(r)]
	if !ok {
		http.NotFound(w, r)
		return
	}
	ctx := WithProvider(r.Context(), client.Provider().Name())
	r = r.WithContext(ctx)

	var opts []loginwith.CallbackOption
	query := r.URL.Query()
	if query.Get("error") == "" && query.Get("code") != "" {
		token := query.Get("state")
		if err := f.states.Consume(ctx, token); err != nil {
			f.log.WarnContext(ctx, "rejected callback state", slog.String("error", err.Error()))
			f.failure(w, r, err)
			return
		}
		opts = append(opts, loginwith.WithExpectedState(token))
	}

	user, err := client.HandleCallback(ctx, r, opts...)
	if err != nil {
		f.log.WarnContext(ctx, "callback failed", slog.String("error", err.Error()))
		f.failure(w, r, err)
		return
	}

	f.success(w, r, user)
}

func respondJSON(w http.ResponseWriter, _ *http.Request, user *loginwith.User) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(user)
}

func (f *Flow) respondError(w http.ResponseWriter, _ *http.Request, err error) {
	http.Error(w, err.Error(), statusFor(err))
}

// statusFor maps flow errors onto HTTP status codes: the caller's fault is
// 4xx, the provider's fault is 502.
func statusFor(err error) int {
	switch {
	case errors.Is(err, loginwith.ErrAuthorizationDenied),
		errors.Is(err, loginwith.ErrStateMissing),
		errors.Is(err, loginwith.ErrStateMismatch),
		errors.Is(err, statestore.ErrUnknownState),
		errors.Is(err, statestore.ErrEmptyToken):
		return http.StatusForbidden
	case errors.Is(err, loginwith.ErrMissingCode),
		errors.Is(err, loginwith.ErrUnsupportedRequest):
		return http.StatusBadRequest
	case errors.Is(err, loginwith.ErrTokenExchange),
		errors.Is(err, loginwith.ErrRequestFailed),
		errors.Is(err, loginwith.ErrDecodeFailed),
		errors.Is(err, loginwith.ErrNetwork):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

// resolveProvider reads the provider name from the "provider" path value
// (net/http 1.22+ patterns and chi both populate it), falling back to the
// query parameter of the same name.
func resolveProvider(r *http.Request) string {
	if name := r.PathValue("provider"); name != "" {
		return name
	}
	return r.URL.Query().Get("provider")
}
