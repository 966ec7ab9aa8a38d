// Package api is a client for the appliance's /control/filtering endpoints.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rshade/filterpanel/internal/logging"
)

// Endpoint paths.
const (
	PathStatus    = "/control/filtering/status"
	PathAddURL    = "/control/filtering/add_url"
	PathRemoveURL = "/control/filtering/remove_url"
	PathSetURL    = "/control/filtering/set_url"
	PathRefresh   = "/control/filtering/refresh"
)

// DefaultTimeout bounds each request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// ErrUnauthorized is matched by errors for 401 and 403 responses.
var ErrUnauthorized = errors.New("unauthorized")

// Error is a non-2xx response.
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, body)
}

// Is reports authentication failures as ErrUnauthorized.
func (e *Error) Is(target error) bool {
	return target == ErrUnauthorized &&
		(e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden)
}

// Client communicates with the control API.
type Client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBasicAuth sets the credentials sent with every request.
func WithBasicAuth(username, password string) Option {
	return func(c *Client) {
		c.username = username
		c.password = password
	}
}

// WithTimeout sets the per-request timeout. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient creates a new API client for the appliance at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the appliance address.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Status returns the filtering configuration and both list kinds.
func (c *Client) Status(ctx context.Context) (*FilteringStatus, error) {
	var out FilteringStatus
	if err := c.do(ctx, http.MethodGet, PathStatus, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddURL subscribes to a list.
func (c *Client) AddURL(ctx context.Context, req AddURLRequest) error {
	return c.do(ctx, http.MethodPost, PathAddURL, req, nil)
}

// RemoveURL unsubscribes from a list.
func (c *Client) RemoveURL(ctx context.Context, req RemoveURLRequest) error {
	return c.do(ctx, http.MethodPost, PathRemoveURL, req, nil)
}

// SetURL edits or toggles a subscription.
func (c *Client) SetURL(ctx context.Context, req SetURLRequest) error {
	return c.do(ctx, http.MethodPost, PathSetURL, req, nil)
}

// Refresh re-downloads the lists of one kind.
func (c *Client) Refresh(ctx context.Context, req RefreshRequest) (*RefreshResponse, error) {
	var out RefreshResponse
	if err := c.do(ctx, http.MethodPost, PathRefresh, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// do sends a JSON request. Response bodies are decoded only when out is non-nil;
// the mutating endpoints answer with plain text.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	log := logging.FromContext(ctx)
	start := time.Now()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.username != "" || c.password != "" {
		req.SetBasicAuth(c.username, c.password)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		log.Warn().Ctx(ctx).Str("component", "api").Str("path", path).Err(err).Msg("request failed")
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	log.Debug().
		Ctx(ctx).
		Str("component", "api").
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("control API call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: %w", method, path, &Error{StatusCode: resp.StatusCode, Body: string(respBody)})
	}

	if out != nil {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}
	return nil
}
