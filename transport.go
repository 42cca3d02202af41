package loginwith

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultUserAgent = "loginwith-go"

// requestor issues provider API calls for one client. It merges the
// identifying User-Agent header, classifies failures, and negotiates JSON
// versus form-encoded response bodies (GitHub's token endpoint answers
// form-encoded unless asked for JSON).
type requestor struct {
	client   *http.Client
	provider string
}

func (rq *requestor) httpClient() *http.Client {
	if rq.client != nil {
		return rq.client
	}
	return http.DefaultClient
}

// postForm sends a form-encoded POST and returns the parsed response body.
func (rq *requestor) postForm(ctx context.Context, rawurl string, form url.Values) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rawurl, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, newError(rq.provider, CodeNetworkError, err.Error(), errors.Join(ErrNetwork, err))
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	body, err := rq.do(req)
	if err != nil {
		return nil, err
	}
	return rq.decode(body)
}

// Get issues an authenticated GET and returns the raw body of a successful
// response. Implements Fetcher.
func (rq *requestor) Get(ctx context.Context, rawurl, accessToken string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawurl, nil)
	if err != nil {
		return nil, newError(rq.provider, CodeNetworkError, err.Error(), errors.Join(ErrNetwork, err))
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	return rq.do(req)
}

// do sends the request and classifies the outcome: transport failures become
// network errors, non-2xx statuses become HTTP errors with a best-effort
// message drawn from known provider error fields.
func (rq *requestor) do(req *http.Request) ([]byte, error) {
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", defaultUserAgent)
	}

	resp, err := rq.httpClient().Do(req)
	if err != nil {
		return nil, newError(rq.provider, CodeNetworkError, err.Error(), errors.Join(ErrNetwork, err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newError(rq.provider, CodeNetworkError, err.Error(), errors.Join(ErrNetwork, err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := fmt.Sprintf("request failed with status %d", resp.StatusCode)
		if m, err := rq.decode(body); err == nil {
			msg = errorMessage(m, msg)
		}
		return nil, newError(rq.provider, CodeHTTPError, msg, ErrRequestFailed)
	}

	return body, nil
}

// decode parses a response body, attempting JSON first and falling back to
// form decoding.
func (rq *requestor) decode(body []byte) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal(body, &m); err == nil {
		return m, nil
	}

	values, err := url.ParseQuery(strings.TrimSpace(string(body)))
	if err != nil || len(values) == 0 {
		return nil, newError(rq.provider, CodeDecodeError, "response is neither JSON nor form-encoded", ErrDecodeFailed)
	}

	m = make(map[string]any, len(values))
	for k := range values {
		m[k] = values.Get(k)
	}
	return m, nil
}

// errorMessage extracts a human-readable message from fields providers
// commonly use in error bodies.
func errorMessage(m map[string]any, fallback string) string {
	for _, key := range []string{"error_description", "error", "message"} {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return fallback
}
