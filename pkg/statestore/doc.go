// Package statestore persists issued OAuth state tokens between the
// authorization redirect and the provider callback.
//
// Hosts that keep their own session storage do not need this package; it
// exists for hosts that have nowhere to park the state token server-side.
// Two backends are provided: Memory for single-instance hosts and Redis for
// hosts running multiple instances.
//
// Tokens are single use. Consume removes the token it verifies, so a
// replayed callback is rejected even inside the TTL window.
package statestore
