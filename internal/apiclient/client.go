// Package apiclient wraps outbound HTTP to the platform API. Every request
// attempts bearer-token injection from the request context; errors come back
// either as *domain.APIError (structured rejection, detail shown verbatim) or
// wrapped domain.ErrAPIUnavailable (transport failure, generic message).
//
// No retry, no de-duplication: a rejected or failed call is terminal for the
// user action that triggered it.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/vachprogramming/munich-event-platform/internal/domain"
	"github.com/vachprogramming/munich-event-platform/internal/session"
)

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, timeout time.Duration) *Client {
	transport := &http.Transport{
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 100,
		IdleConnTimeout:     90 * time.Second,
		ForceAttemptHTTP2:   true,
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: transport,
			Timeout:   timeout,
		},
	}
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) postForm(ctx context.Context, path string, form url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	// Header injection is attempted on every call; whether a token is present
	// is decided by the session middleware, not here.
	if token, ok := session.Token(req.Context()); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s %s: %v", domain.ErrAPIUnavailable, req.Method, req.URL.Path, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return rejectionError(res)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

// rejectionError extracts the FastAPI-style {"detail": "..."} reason. Detail
// stays empty when the body carries no reason; callers supply the fallback.
func rejectionError(res *http.Response) error {
	var payload struct {
		Detail string `json:"detail"`
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, 1<<16))
	if err == nil {
		_ = json.Unmarshal(body, &payload)
	}

	return &domain.APIError{
		StatusCode: res.StatusCode,
		Detail:     payload.Detail,
	}
}
