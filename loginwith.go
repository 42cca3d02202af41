package loginwith

import (
	"fmt"
	"slices"
	"strings"

	"github.com/loginwith/loginwith/pkg/state"
)

// builtinProviders maps provider names to their variants. The table is
// rebuilt per call so no shared value can be mutated behind the factory's
// back.
func builtinProviders() map[string]Provider {
	return map[string]Provider{
		GitHubProviderName:  GitHub{},
		GoogleProviderName:  Google{},
		DiscordProviderName: Discord{},
	}
}

// SupportedProviders returns the sorted names of the built-in providers.
func SupportedProviders() []string {
	providers := builtinProviders()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// New constructs one client per configured provider, keyed by provider
// name. It fails on an empty config map, on a name outside the built-in
// set, and on any config missing a required field.
func New(configs map[string]Config, opts ...Option) (map[string]*Client, error) {
	if len(configs) == 0 {
		return nil, ErrNoProviders
	}

	providers := builtinProviders()
	clients := make(map[string]*Client, len(configs))
	for name, cfg := range configs {
		provider, ok := providers[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q (supported: %s)",
				ErrUnknownProvider, name, strings.Join(SupportedProviders(), ", "))
		}

		client, err := NewClient(provider, cfg, opts...)
		if err != nil {
			return nil, err
		}
		clients[name] = client
	}

	return clients, nil
}

// GenerateState returns a fresh anti-CSRF state token for the
// authorization redirect. See pkg/state for sizing control.
func GenerateState() (string, error) {
	return state.Generate()
}
