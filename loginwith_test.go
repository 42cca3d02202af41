package loginwith_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/loginwith/loginwith"
)

func validConfig() loginwith.Config {
	return loginwith.Config{
		ClientID:     "test-id",
		ClientSecret: "test-secret",
		RedirectURL:  "https://example.com/callback",
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("builds one client per provider", func(t *testing.T) {
		t.Parallel()
		clients, err := loginwith.New(map[string]loginwith.Config{
			loginwith.GitHubProviderName:  validConfig(),
			loginwith.GoogleProviderName:  validConfig(),
			loginwith.DiscordProviderName: validConfig(),
		})
		require.NoError(t, err)
		require.Len(t, clients, 3)
		require.Equal(t, "github", clients["github"].Provider().Name())
		require.Equal(t, "google", clients["google"].Provider().Name())
		require.Equal(t, "discord", clients["discord"].Provider().Name())
	})

	t.Run("empty config map", func(t *testing.T) {
		t.Parallel()
		clients, err := loginwith.New(nil)
		require.ErrorIs(t, err, loginwith.ErrNoProviders)
		require.Nil(t, clients)
	})

	t.Run("unknown provider lists supported names", func(t *testing.T) {
		t.Parallel()
		clients, err := loginwith.New(map[string]loginwith.Config{
			"gitlab": validConfig(),
		})
		require.ErrorIs(t, err, loginwith.ErrUnknownProvider)
		require.ErrorContains(t, err, "discord, github, google")
		require.Nil(t, clients)
	})
}

func TestNewClient_ConfigValidation(t *testing.T) {
	t.Parallel()

	providers := map[string]loginwith.Provider{
		"github":  loginwith.GitHub{},
		"google":  loginwith.Google{},
		"discord": loginwith.Discord{},
	}

	for name, provider := range providers {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			mutations := map[string]func(*loginwith.Config){
				"missing client ID":     func(c *loginwith.Config) { c.ClientID = "" },
				"missing client secret": func(c *loginwith.Config) { c.ClientSecret = "" },
				"missing redirect URL":  func(c *loginwith.Config) { c.RedirectURL = "" },
			}

			for label, mutate := range mutations {
				t.Run(label, func(t *testing.T) {
					t.Parallel()
					cfg := validConfig()
					mutate(&cfg)

					client, err := loginwith.NewClient(provider, cfg)
					require.ErrorIs(t, err, loginwith.ErrInvalidConfig)
					require.Nil(t, client)

					var lwErr *loginwith.Error
					require.ErrorAs(t, err, &lwErr)
					require.Equal(t, provider.Name(), lwErr.Provider)
					require.Equal(t, loginwith.CodeInvalidConfig, lwErr.Code)
				})
			}
		})
	}
}

func TestSupportedProviders(t *testing.T) {
	t.Parallel()
	require.Equal(t, []string{"discord", "github", "google"}, loginwith.SupportedProviders())
}

func TestGenerateState(t *testing.T) {
	t.Parallel()

	a, err := loginwith.GenerateState()
	require.NoError(t, err)
	b, err := loginwith.GenerateState()
	require.NoError(t, err)

	require.Len(t, a, 64)
	require.NotEqual(t, a, b)
}
