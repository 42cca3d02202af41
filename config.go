package loginwith

// Config holds the OAuth application credentials for one provider.
// All three credential fields are required; Scopes is optional and falls
// back to the provider's default scope set. A Config is copied into the
// client at construction and never mutated afterwards.
type Config struct {
	ClientID     string   `env:"CLIENT_ID"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	RedirectURL  string   `env:"REDIRECT_URL"`
	Scopes       []string `env:"SCOPES" envSeparator:","`
}

// validate reports the first missing required field, attributed to the
// provider the config was supplied for.
func (c Config) validate(provider string) error {
	switch {
	case c.ClientID == "":
		return newError(provider, CodeInvalidConfig, "missing client ID", ErrInvalidConfig)
	case c.ClientSecret == "":
		return newError(provider, CodeInvalidConfig, "missing client secret", ErrInvalidConfig)
	case c.RedirectURL == "":
		return newError(provider, CodeInvalidConfig, "missing redirect URL", ErrInvalidConfig)
	}
	return nil
}
