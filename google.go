package loginwith

import (
	"context"
	"encoding/json"
	"errors"

	"golang.org/x/oauth2"
)

const (
	// GoogleProviderName is the identifier for the Google provider.
	GoogleProviderName = "google"

	googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"
)

// Google implements Provider for Google OAuth. The profile is a direct
// mapping from a single userinfo request.
type Google struct{}

// Name returns the provider identifier.
func (Google) Name() string { return GoogleProviderName }

// Endpoint returns Google's OAuth endpoints. The v2 authorization URL is
// pinned here; the stock golang.org/x/oauth2 endpoint still points at the
// legacy one.
func (Google) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:  "https://accounts.google.com/o/oauth2/v2/auth",
		TokenURL: "https://oauth2.googleapis.com/token",
	}
}

// DefaultScopes returns the scopes requested when the config sets none.
func (Google) DefaultScopes() []string {
	return []string{"openid", "email", "profile"}
}

// FetchUser retrieves and normalizes the Google profile.
func (Google) FetchUser(ctx context.Context, f Fetcher, accessToken string) (*User, error) {
	body, err := f.Get(ctx, googleUserInfoURL, accessToken)
	if err != nil {
		return nil, err
	}

	var gu googleUser
	if err := json.Unmarshal(body, &gu); err != nil {
		return nil, newError(GoogleProviderName, CodeDecodeError, "decode userinfo: "+err.Error(),
			errors.Join(ErrDecodeFailed, err))
	}
	var raw map[string]any
	_ = json.Unmarshal(body, &raw)

	return &User{
		Provider:  GoogleProviderName,
		ID:        gu.ID,
		Email:     gu.Email,
		Name:      gu.Name,
		AvatarURL: gu.Picture,
		Raw:       raw,
	}, nil
}

type googleUser struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}
