// Package logger provides slog factories for hosts embedding the OAuth flow.
//
// New returns a stdout JSON logger; NewWithSentry adds Sentry forwarding
// with graceful fallback when no DSN is configured. Context extractors
// inject request-scoped attributes (e.g. which provider handles the current
// callback) into every record:
//
//	log := logger.New(httpauth.ProviderExtractor)
//	log.InfoContext(ctx, "callback completed")
//	// {"level":"INFO","msg":"callback completed","oauth_provider":"github"}
//
// NewNoop returns a logger that discards everything; the flow core defaults
// to it so logging stays strictly opt-in.
package logger
