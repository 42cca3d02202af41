package loginwith

import (
	"errors"
	"fmt"
)

// Machine-readable error codes carried by [Error]. Callers should branch on
// these (or on the package sentinels via errors.Is), never on message text.
// An authorization denial carries the provider's own denial token as its code
// (e.g. "access_denied") rather than one of the constants below.
const (
	CodeInvalidConfig      = "invalid_config"
	CodeUnsupportedRequest = "unsupported_request"
	CodeMissingCode        = "missing_code"
	CodeStateMissing       = "state_missing"
	CodeStateMismatch      = "state_mismatch"
	CodeTokenError         = "token_error"
	CodeHTTPError          = "http_error"
	CodeNetworkError       = "network_error"
	CodeDecodeError        = "decode_error"
)

// Sentinel errors for errors.Is branching. Every error returned by this
// package wraps exactly one of these.
var (
	// ErrInvalidConfig is returned when a provider config is missing a required field.
	ErrInvalidConfig = errors.New("loginwith: invalid provider config")

	// ErrUnknownProvider is returned when a config names a provider this package does not implement.
	ErrUnknownProvider = errors.New("loginwith: unknown provider")

	// ErrNoProviders is returned when New is called with an empty config map.
	ErrNoProviders = errors.New("loginwith: no providers configured")

	// ErrUnsupportedRequest is returned when a callback request value matches
	// none of the recognized request shapes.
	ErrUnsupportedRequest = errors.New("loginwith: unsupported request shape")

	// ErrAuthorizationDenied is returned when the provider reported an error
	// on the callback, e.g. the user denied consent.
	ErrAuthorizationDenied = errors.New("loginwith: authorization denied by provider")

	// ErrMissingCode is returned when the callback carries no authorization code.
	ErrMissingCode = errors.New("loginwith: missing authorization code")

	// ErrStateMissing is returned when state validation was requested but
	// either side of the comparison is absent.
	ErrStateMissing = errors.New("loginwith: missing state token")

	// ErrStateMismatch is returned when the callback state does not match the issued one.
	ErrStateMismatch = errors.New("loginwith: state token mismatch")

	// ErrTokenExchange is returned when the token endpoint reports an error
	// or omits the access token.
	ErrTokenExchange = errors.New("loginwith: token exchange failed")

	// ErrRequestFailed is returned when a provider endpoint answers with a non-success status.
	ErrRequestFailed = errors.New("loginwith: provider returned non-success status")

	// ErrNetwork is returned when the request never produced an HTTP response.
	ErrNetwork = errors.New("loginwith: network request failed")

	// ErrDecodeFailed is returned when a provider response cannot be decoded.
	ErrDecodeFailed = errors.New("loginwith: failed to decode provider response")
)

// Error attributes a flow failure to a provider with a stable code.
// Provider is empty only for failures raised before a client exists,
// e.g. an unknown provider name passed to New.
type Error struct {
	Provider string `json:"provider,omitempty"`
	Code     string `json:"code"`
	Message  string `json:"message"`
	cause    error
}

func (e *Error) Error() string {
	if e.Provider == "" {
		return fmt.Sprintf("loginwith: %s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("loginwith: %s: %s: %s", e.Provider, e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

// newError builds an *Error whose cause chain includes the matching sentinel,
// so both errors.As (for Provider/Code) and errors.Is (for the kind) work.
func newError(provider, code, message string, cause error) *Error {
	return &Error{Provider: provider, Code: code, Message: message, cause: cause}
}
