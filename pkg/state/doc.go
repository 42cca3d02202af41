// Package state generates and validates the anti-CSRF state tokens carried
// through the OAuth authorization redirect.
//
// Tokens are hex-encoded cryptographically secure random strings. Validation
// uses a constant-time comparison so the check leaks no timing information
// about the expected token.
//
//	token, err := state.Generate()
//	// round-trip token through the authorization redirect, then:
//	if err := state.Validate(token, received); err != nil {
//		// errors.Is(err, state.ErrMissing) or state.ErrMismatch
//	}
package state
