// Package httpauth mounts the OAuth flow as plain net/http handlers for
// hosts that do not want to wire the redirect and callback themselves.
//
//	clients, _ := loginwith.New(configs)
//	flow := httpauth.New(clients,
//	    httpauth.WithLogger(logger.New(httpauth.ProviderExtractor)),
//	    httpauth.OnSuccess(func(w http.ResponseWriter, r *http.Request, user *loginwith.User) {
//	        // create the host session, redirect
//	    }),
//	)
//
//	mux := http.NewServeMux()
//	mux.HandleFunc("GET /auth/{provider}", flow.Begin)
//	mux.HandleFunc("GET /auth/{provider}/callback", flow.Callback)
//
// State tokens are generated per flow, parked in a statestore.Store (memory
// by default, Redis for multi-instance hosts), and consumed exactly once on
// the callback.
package httpauth
