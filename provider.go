package loginwith

import (
	"context"
	"net/url"

	"golang.org/x/oauth2"
)

// User is the provider-agnostic profile returned by a successful callback.
// Optional fields (Email, AvatarURL) are empty strings when the provider did
// not supply a value. ID is always a string, even for providers that use
// numeric identifiers.
type User struct {
	Provider    string         `json:"provider"`
	ID          string         `json:"id"`
	Email       string         `json:"email"`
	Name        string         `json:"name"`
	AvatarURL   string         `json:"avatar"`
	AccessToken string         `json:"accessToken"`
	Raw         map[string]any `json:"raw"`
}

// Token is the result of a successful authorization-code exchange, returned
// by Client.Exchange. Raw retains the token endpoint's full response,
// including any provider-specific extra fields.
type Token struct {
	AccessToken string
	Raw         map[string]any
}

// Fetcher performs authenticated GET requests against provider APIs.
// It is implemented by the client's internal requestor and passed to
// Provider.FetchUser; tests may substitute their own.
type Fetcher interface {
	// Get issues a GET request with a bearer token and returns the raw
	// response body of a successful response.
	Get(ctx context.Context, rawurl, accessToken string) ([]byte, error)
}

// Provider supplies the variant-specific pieces of the authorization-code
// flow: endpoint identity, scope defaults, and profile normalization.
// Implementations must be stateless values safe for concurrent use; adding a
// provider means implementing this interface, the flow itself never changes.
type Provider interface {
	// Name returns the provider identifier (e.g. "github").
	Name() string

	// Endpoint returns the authorization and token endpoint URLs.
	Endpoint() oauth2.Endpoint

	// DefaultScopes returns the scopes requested when the config sets none.
	DefaultScopes() []string

	// FetchUser retrieves and normalizes the user profile for the given
	// access token. The returned User has every field populated except
	// AccessToken, which the client attaches afterwards.
	FetchUser(ctx context.Context, f Fetcher, accessToken string) (*User, error)
}

// AuthParamsAppender is an optional Provider extension that appends
// provider-specific query parameters to the authorization URL.
type AuthParamsAppender interface {
	AppendAuthParams(q url.Values)
}
