package loginwith

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"strconv"

	"golang.org/x/oauth2"
	githubOAuth "golang.org/x/oauth2/github"
)

const (
	// GitHubProviderName is the identifier for the GitHub provider.
	GitHubProviderName = "github"

	githubUserURL   = "https://api.github.com/user"
	githubEmailsURL = "https://api.github.com/user/emails"
)

// GitHub implements Provider for GitHub OAuth.
//
// GitHub hides the account email from the profile endpoint when the user
// marks it private, so FetchUser issues a secondary request against the
// emails endpoint and picks the primary verified address, then any verified
// address. A failure of that secondary request degrades the email to empty
// instead of failing the callback.
type GitHub struct{}

// Name returns the provider identifier.
func (GitHub) Name() string { return GitHubProviderName }

// Endpoint returns GitHub's OAuth endpoints.
func (GitHub) Endpoint() oauth2.Endpoint { return githubOAuth.Endpoint }

// DefaultScopes returns the scopes requested when the config sets none.
func (GitHub) DefaultScopes() []string {
	return []string{"read:user", "user:email"}
}

// AppendAuthParams adds allow_signup so users without a GitHub account can
// register during the flow.
func (GitHub) AppendAuthParams(q url.Values) {
	q.Set("allow_signup", "true")
}

// FetchUser retrieves and normalizes the GitHub profile.
func (g GitHub) FetchUser(ctx context.Context, f Fetcher, accessToken string) (*User, error) {
	body, err := f.Get(ctx, githubUserURL, accessToken)
	if err != nil {
		return nil, err
	}

	var gu githubUser
	if err := json.Unmarshal(body, &gu); err != nil {
		return nil, newError(GitHubProviderName, CodeDecodeError, "decode user profile: "+err.Error(),
			errors.Join(ErrDecodeFailed, err))
	}
	var raw map[string]any
	_ = json.Unmarshal(body, &raw)

	email := gu.Email
	if email == "" {
		// Lookup failures are absorbed: a user without a readable email is
		// still a valid login.
		if resolved, err := g.fetchVerifiedEmail(ctx, f, accessToken); err == nil {
			email = resolved
		}
	}

	name := gu.Name
	if name == "" {
		name = gu.Login
	}

	return &User{
		Provider:  GitHubProviderName,
		ID:        strconv.FormatInt(gu.ID, 10),
		Email:     email,
		Name:      name,
		AvatarURL: gu.AvatarURL,
		Raw:       raw,
	}, nil
}

// fetchVerifiedEmail resolves the account email list, preferring the entry
// marked both primary and verified, then any verified entry, then empty.
func (GitHub) fetchVerifiedEmail(ctx context.Context, f Fetcher, accessToken string) (string, error) {
	body, err := f.Get(ctx, githubEmailsURL, accessToken)
	if err != nil {
		return "", err
	}

	var emails []githubEmail
	if err := json.Unmarshal(body, &emails); err != nil {
		return "", errors.Join(ErrDecodeFailed, err)
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	for _, e := range emails {
		if e.Verified {
			return e.Email, nil
		}
	}
	return "", nil
}

type githubUser struct {
	Login     string `json:"login"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar_url"`
	ID        int64  `json:"id"`
}

type githubEmail struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}
