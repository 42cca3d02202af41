// Command example runs a minimal host wiring all built-in providers behind
// chi. Configuration comes from the environment:
//
//	GITHUB_CLIENT_ID / GITHUB_CLIENT_SECRET / GITHUB_REDIRECT_URL
//	GOOGLE_CLIENT_ID / GOOGLE_CLIENT_SECRET / GOOGLE_REDIRECT_URL
//	DISCORD_CLIENT_ID / DISCORD_CLIENT_SECRET / DISCORD_REDIRECT_URL
//	REDIS_URL (optional; switches state storage from memory to Redis)
//
// Providers with missing credentials are skipped, so a single configured
// provider is enough to try the flow.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/loginwith/loginwith"
	"github.com/loginwith/loginwith/pkg/httpauth"
	"github.com/loginwith/loginwith/pkg/logger"
	"github.com/loginwith/loginwith/pkg/statestore"
)

type config struct {
	Addr     string           `env:"ADDR" envDefault:":8080"`
	RedisURL string           `env:"REDIS_URL"`
	GitHub   loginwith.Config `envPrefix:"GITHUB_"`
	Google   loginwith.Config `envPrefix:"GOOGLE_"`
	Discord  loginwith.Config `envPrefix:"DISCORD_"`
}

func main() {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("parse config: %v", err)
	}

	configs := map[string]loginwith.Config{}
	for name, c := range map[string]loginwith.Config{
		loginwith.GitHubProviderName:  cfg.GitHub,
		loginwith.GoogleProviderName:  cfg.Google,
		loginwith.DiscordProviderName: cfg.Discord,
	} {
		if c.ClientID != "" && c.ClientSecret != "" && c.RedirectURL != "" {
			configs[name] = c
		}
	}
	if len(configs) == 0 {
		log.Fatal("no provider configured; set at least one set of *_CLIENT_ID/*_CLIENT_SECRET/*_REDIRECT_URL")
	}

	slogger := logger.New(httpauth.ProviderExtractor)

	clients, err := loginwith.New(configs, loginwith.WithLogger(slogger))
	if err != nil {
		log.Fatalf("build clients: %v", err)
	}

	var states statestore.Store = statestore.NewMemory()
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("parse redis url: %v", err)
		}
		states = statestore.NewRedis(redis.NewClient(opt))
	}

	flow := httpauth.New(clients,
		httpauth.WithLogger(slogger),
		httpauth.WithStateStore(states),
		httpauth.OnSuccess(func(w http.ResponseWriter, r *http.Request, user *loginwith.User) {
			// Stand-in for a real session layer.
			http.SetCookie(w, &http.Cookie{
				Name:     "session",
				Value:    uuid.NewString(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
			fmt.Fprintf(w, "welcome %s (%s via %s)\n", user.Name, user.ID, user.Provider)
		}),
	)

	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		for name := range clients {
			fmt.Fprintf(w, "<a href=%q>login with %s</a><br>", "/auth/"+name, name)
		}
	})
	r.Get("/auth/{provider}", flow.Begin)
	r.Get("/auth/{provider}/callback", flow.Callback)

	slogger.Info("listening", "addr", cfg.Addr, "providers", len(clients))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
