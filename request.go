package loginwith

import (
	"fmt"
	"net/http"
	"net/url"
)

// CallbackParams holds the OAuth parameters carried by a callback request.
// Empty strings mark absent parameters.
type CallbackParams struct {
	Code             string
	State            string
	ErrorCode        string
	ErrorDescription string
}

// CallbackParams implements CallbackRequest, so a literal value can be
// passed straight to HandleCallback.
func (p CallbackParams) CallbackParams() CallbackParams { return p }

// CallbackRequest supplies callback parameters extracted from a host's
// request representation. Hosts on frameworks this package does not
// recognize implement this interface at their integration boundary.
type CallbackRequest interface {
	CallbackParams() CallbackParams
}

// AdaptRequest resolves a request-like value into a CallbackRequest.
// Recognized shapes, checked in order:
//
//  1. a CallbackRequest implementation, returned as is
//  2. url.Values holding the pre-parsed query
//  3. *url.URL, read through its query component
//  4. *http.Request, its URL resolved against the Host header
//     (falling back to "localhost") and parsed the same way
//
// Anything else fails with ErrUnsupportedRequest.
func AdaptRequest(v any) (CallbackRequest, error) {
	switch r := v.(type) {
	case CallbackRequest:
		return r, nil
	case url.Values:
		return queryRequest(r), nil
	case *url.URL:
		return queryRequest(r.Query()), nil
	case *http.Request:
		return queryRequest(absoluteURL(r).Query()), nil
	}
	return nil, newError("", CodeUnsupportedRequest,
		fmt.Sprintf("cannot extract callback parameters from %T", v), ErrUnsupportedRequest)
}

type queryRequest url.Values

func (q queryRequest) CallbackParams() CallbackParams {
	v := url.Values(q)
	return CallbackParams{
		Code:             v.Get("code"),
		State:            v.Get("state"),
		ErrorCode:        v.Get("error"),
		ErrorDescription: v.Get("error_description"),
	}
}

// absoluteURL rebuilds the absolute request URL for server-side requests,
// whose URL field carries only the path and query.
func absoluteURL(r *http.Request) *url.URL {
	u := *r.URL
	if u.IsAbs() {
		return &u
	}
	u.Scheme = "http"
	if r.TLS != nil {
		u.Scheme = "https"
	}
	u.Host = r.Host
	if u.Host == "" {
		u.Host = "localhost"
	}
	return &u
}
