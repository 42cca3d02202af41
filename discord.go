package loginwith

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/oauth2"
)

const (
	// DiscordProviderName is the identifier for the Discord provider.
	DiscordProviderName = "discord"

	discordUserURL      = "https://discord.com/api/users/@me"
	discordAvatarPrefix = "https://cdn.discordapp.com/avatars"
)

// Discord implements Provider for Discord OAuth. The display name prefers
// the account's global display name over the login username, and the avatar
// URL is synthesized from Discord's CDN template.
type Discord struct{}

// Name returns the provider identifier.
func (Discord) Name() string { return DiscordProviderName }

// Endpoint returns Discord's OAuth endpoints.
func (Discord) Endpoint() oauth2.Endpoint {
	return oauth2.Endpoint{
		AuthURL:  "https://discord.com/api/oauth2/authorize",
		TokenURL: "https://discord.com/api/oauth2/token",
	}
}

// DefaultScopes returns the scopes requested when the config sets none.
func (Discord) DefaultScopes() []string {
	return []string{"identify", "email"}
}

// FetchUser retrieves and normalizes the Discord profile.
func (Discord) FetchUser(ctx context.Context, f Fetcher, accessToken string) (*User, error) {
	body, err := f.Get(ctx, discordUserURL, accessToken)
	if err != nil {
		return nil, err
	}

	var du discordUser
	if err := json.Unmarshal(body, &du); err != nil {
		return nil, newError(DiscordProviderName, CodeDecodeError, "decode user profile: "+err.Error(),
			errors.Join(ErrDecodeFailed, err))
	}
	var raw map[string]any
	_ = json.Unmarshal(body, &raw)

	name := du.GlobalName
	if name == "" {
		name = du.Username
	}

	return &User{
		Provider:  DiscordProviderName,
		ID:        du.ID,
		Email:     du.Email,
		Name:      name,
		AvatarURL: discordAvatarURL(du.ID, du.Avatar),
		Raw:       raw,
	}, nil
}

// discordAvatarURL builds the CDN avatar URL. An "a_" hash prefix marks an
// animated avatar and selects the gif variant; an empty hash means the
// account has no custom avatar.
func discordAvatarURL(id, hash string) string {
	if hash == "" {
		return ""
	}
	ext := "png"
	if strings.HasPrefix(hash, "a_") {
		ext = "gif"
	}
	return fmt.Sprintf("%s/%s/%s.%s", discordAvatarPrefix, id, hash, ext)
}

type discordUser struct {
	ID         string `json:"id"`
	Username   string `json:"username"`
	GlobalName string `json:"global_name"`
	Avatar     string `json:"avatar"`
	Email      string `json:"email"`
}
