// Package loginwith implements the OAuth 2.0 authorization-code flow against
// multiple identity providers behind one uniform interface, returning a
// provider-agnostic user profile.
//
// The package is a library, not a server: the host application owns routing,
// sessions, and cookies, and hands this package either its parsed callback
// parameters or the raw *http.Request. GitHub, Google, and Discord are built
// in; a new provider is a value implementing the [Provider] interface.
//
// # Quick Start
//
// Construct clients from a provider-name-to-config map:
//
//	clients, err := loginwith.New(map[string]loginwith.Config{
//		loginwith.GitHubProviderName: {
//			ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
//			ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
//			RedirectURL:  "https://example.com/auth/github/callback",
//		},
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	github := clients[loginwith.GitHubProviderName]
//
// Redirect the user out:
//
//	state, _ := loginwith.GenerateState()
//	// store state in the host's session, then:
//	http.Redirect(w, r, github.AuthURL(loginwith.WithState(state)), http.StatusFound)
//
// And complete the flow in the callback handler:
//
//	user, err := github.HandleCallback(r.Context(), r, loginwith.WithExpectedState(state))
//	if err != nil {
//		// handle error
//	}
//	fmt.Println(user.Provider, user.ID, user.Email)
//
// # Error Handling
//
// Every failure is an *[Error] carrying the provider name and a stable
// machine-readable code, and wraps one of the package sentinels:
//
//	var lwErr *loginwith.Error
//	switch {
//	case errors.Is(err, loginwith.ErrAuthorizationDenied):
//		// user refused consent; errors.As(err, &lwErr) exposes the
//		// provider's own denial code in lwErr.Code
//	case errors.Is(err, loginwith.ErrStateMismatch):
//		// possible CSRF, reject the session
//	}
//
// Callers should branch on codes and sentinels, never on message text.
//
// # Concurrency
//
// Clients are immutable after construction. Concurrent calls on one client,
// or across clients, are safe; each call is internally sequential and
// suspends only at network boundaries. The package applies no timeouts or
// retries of its own: pass a context with a deadline and, if needed, an
// *http.Client with a timeout via [WithHTTPClient].
//
// For hosts that want ready-made http handlers and server-side state
// storage, see pkg/httpauth and pkg/statestore.
package loginwith
