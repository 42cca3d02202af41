package httpauth

import (
	"context"
	"log/slog"
)

type providerCtxKey struct{}

// WithProvider stamps the provider name onto the context. Flow does this on
// every request it handles.
func WithProvider(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, providerCtxKey{}, name)
}

// ProviderFromContext reads the provider name stamped by WithProvider.
func ProviderFromContext(ctx context.Context) (string, bool) {
	name, ok := ctx.Value(providerCtxKey{}).(string)
	return name, ok && name != ""
}

// ProviderExtractor is a logger.ContextExtractor that adds the current
// provider name to every log record emitted while handling a flow request.
func ProviderExtractor(ctx context.Context) (slog.Attr, bool) {
	name, ok := ProviderFromContext(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("oauth_provider", name), true
}
