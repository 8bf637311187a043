// Package httpapi is the remote adapter: it speaks the notes backend's REST
// dialect (JSON bodies, bearer tokens, {statusCode, message, data} envelopes)
// and maps responses onto the domain types in pkg/core.
package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/time/rate"

	"notectl/pkg/core"
)

// TokenSource supplies the bearer token for authenticated calls.
// An empty string means the request goes out unauthenticated.
type TokenSource interface {
	Token() string
}

// Config configures a Client.
type Config struct {
	// BaseURL is the backend root, without a trailing slash.
	BaseURL string

	// HTTPClient is the underlying transport. Defaults to a client with no
	// timeout: a hung request holds the caller (acknowledged gap, there is
	// deliberately no client-side cancellation of superseded requests).
	HTTPClient *http.Client

	Logger *slog.Logger

	// Tokens supplies the bearer token. May be nil for auth-only clients.
	Tokens TokenSource

	// OnUnauthorized is invoked whenever the backend answers 401, before the
	// error is returned to the caller. Session invalidation hangs off this
	// hook so that "clear session" stays decoupled from "notify caller".
	OnUnauthorized func()

	// RateLimit caps outgoing requests. Zero means unlimited.
	RateLimit rate.Limit
	Burst     int
}

// Client issues JSON requests against the backend.
type Client struct {
	baseURL        string
	http           *http.Client
	logger         *slog.Logger
	tokens         TokenSource
	onUnauthorized func()
	limiter        *rate.Limiter
}

// NewClient creates a Client from cfg.
func NewClient(cfg Config) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	limit := cfg.RateLimit
	if limit == 0 {
		limit = rate.Inf
	}
	burst := cfg.Burst
	if burst == 0 {
		burst = 1
	}
	return &Client{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		http:           httpClient,
		logger:         logger,
		tokens:         cfg.Tokens,
		onUnauthorized: cfg.OnUnauthorized,
		limiter:        rate.NewLimiter(limit, burst),
	}
}

// Get issues a GET request and returns the raw response body.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, nil)
}

// Post issues a POST request with a JSON body (nil for empty).
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPost, path, body)
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.do(ctx, http.MethodPut, path, body)
}

// Delete issues a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodDelete, path, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	c.logger.Debug("request", "method", method, "path", path)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	c.logger.Debug("response", "method", method, "path", path, "status", resp.StatusCode)

	if resp.StatusCode >= 400 {
		return nil, c.fail(resp.StatusCode, data)
	}
	return data, nil
}

// fail turns a non-2xx response into a RequestError. The body is parsed as
// JSON, falling back to plain text. A 401 additionally fires the
// OnUnauthorized hook; the error itself still reaches the caller.
func (c *Client) fail(status int, body []byte) error {
	message := errorMessage(body)
	if status == http.StatusUnauthorized {
		c.logger.Warn("request rejected, token invalid or expired")
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
	}
	return &core.RequestError{Status: status, Message: message}
}

func errorMessage(body []byte) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return strings.TrimSpace(string(body))
}
