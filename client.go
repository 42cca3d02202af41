package loginwith

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/loginwith/loginwith/pkg/logger"
	"github.com/loginwith/loginwith/pkg/state"
)

// Client runs the authorization-code flow for one provider. Clients hold no
// mutable state after construction; concurrent calls on the same client are
// safe and independent.
type Client struct {
	provider Provider
	config   Config
	scopes   []string
	rq       *requestor
	log      *slog.Logger
}

// NewClient binds a provider variant to its credentials. It fails with
// ErrInvalidConfig if any required credential field is empty.
func NewClient(provider Provider, cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.validate(provider.Name()); err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logger.NewNoop()
	}

	scopes := cfg.Scopes
	if len(scopes) == 0 {
		scopes = provider.DefaultScopes()
	}

	return &Client{
		provider: provider,
		config:   cfg,
		scopes:   scopes,
		rq:       &requestor{client: o.httpClient, provider: provider.Name()},
		log:      o.logger,
	}, nil
}

// Provider returns the variant this client is bound to.
func (c *Client) Provider() Provider { return c.provider }

// AuthURL builds the URL the host redirects the user to. It is a pure
// function of the client config and per-call options; per-call scopes never
// leak into the client's stored defaults.
func (c *Client) AuthURL(opts ...AuthURLOption) string {
	var o authURLOptions
	for _, opt := range opts {
		opt(&o)
	}

	scopes := o.scopes
	if len(scopes) == 0 {
		scopes = c.scopes
	}

	q := url.Values{}
	q.Set("client_id", c.config.ClientID)
	q.Set("redirect_uri", c.config.RedirectURL)
	q.Set("response_type", "code")
	q.Set("scope", strings.Join(scopes, " "))
	if o.state != "" {
		q.Set("state", o.state)
	}
	if a, ok := c.provider.(AuthParamsAppender); ok {
		a.AppendAuthParams(q)
	}

	return c.provider.Endpoint().AuthURL + "?" + q.Encode()
}

// HandleCallback consumes the provider's redirect back to the host and
// returns the normalized user. req may be url.Values, *url.URL,
// *http.Request, or any CallbackRequest implementation.
//
// Validation runs in strict order before any network call: a provider error
// parameter wins over everything, then a missing code, then state
// validation when WithExpectedState was supplied. Only a fully validated
// request reaches the token endpoint, and only a fully populated user is
// ever returned.
func (c *Client) HandleCallback(ctx context.Context, req any, opts ...CallbackOption) (*User, error) {
	var o callbackOptions
	for _, opt := range opts {
		opt(&o)
	}

	cr, err := AdaptRequest(req)
	if err != nil {
		return nil, err
	}
	params := cr.CallbackParams()

	if params.ErrorCode != "" {
		msg := params.ErrorDescription
		if msg == "" {
			msg = fmt.Sprintf("provider returned error %q", params.ErrorCode)
		}
		return nil, newError(c.provider.Name(), params.ErrorCode, msg, ErrAuthorizationDenied)
	}

	if params.Code == "" {
		return nil, newError(c.provider.Name(), CodeMissingCode, "callback carries no authorization code", ErrMissingCode)
	}

	if o.expectedState != "" {
		if err := state.Validate(o.expectedState, params.State); err != nil {
			code, sentinel := CodeStateMismatch, ErrStateMismatch
			if errors.Is(err, state.ErrMissing) {
				code, sentinel = CodeStateMissing, ErrStateMissing
			}
			return nil, newError(c.provider.Name(), code, err.Error(), errors.Join(sentinel, err))
		}
	}

	token, err := c.Exchange(ctx, params.Code)
	if err != nil {
		return nil, err
	}
	c.log.DebugContext(ctx, "exchanged authorization code",
		slog.String("provider", c.provider.Name()))

	user, err := c.provider.FetchUser(ctx, c.rq, token.AccessToken)
	if err != nil {
		return nil, err
	}

	user.AccessToken = token.AccessToken
	c.log.InfoContext(ctx, "callback completed",
		slog.String("provider", c.provider.Name()),
		slog.String("user_id", user.ID))
	return user, nil
}

// Exchange trades an authorization code for an access token. HandleCallback
// calls it after validation; hosts that need the token endpoint's extra
// response fields (token_type, granted scope) can call it directly and read
// Token.Raw.
//
// An error field in the response body is authoritative even on HTTP 200
// (GitHub reports expired codes this way), and a response without an access
// token is treated the same.
func (c *Client) Exchange(ctx context.Context, code string) (*Token, error) {
	form := url.Values{}
	form.Set("client_id", c.config.ClientID)
	form.Set("client_secret", c.config.ClientSecret)
	form.Set("code", code)
	form.Set("redirect_uri", c.config.RedirectURL)
	form.Set("grant_type", "authorization_code")

	body, err := c.rq.postForm(ctx, c.provider.Endpoint().TokenURL, form)
	if err != nil {
		return nil, err
	}

	if errCode, ok := body["error"].(string); ok && errCode != "" {
		msg := errorMessage(body, fmt.Sprintf("token endpoint returned error %q", errCode))
		return nil, newError(c.provider.Name(), CodeTokenError, msg, ErrTokenExchange)
	}

	accessToken, _ := body["access_token"].(string)
	if accessToken == "" {
		return nil, newError(c.provider.Name(), CodeTokenError, "token response carries no access token", ErrTokenExchange)
	}

	return &Token{AccessToken: accessToken, Raw: body}, nil
}
