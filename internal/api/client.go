// Package api is the HTTP client core shared by every GetWay service:
// it performs a single authenticated or anonymous request with a bounded
// deadline and normalizes every failure into the Error taxonomy.
//
// The client is deliberately a thin primitive: it never retries and never
// touches the session store beyond reading the current token. Retry policy
// belongs to callers (see Retry).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/getwaylabs/getway/internal/config"
	"github.com/getwaylabs/getway/pkg/model"
)

// TokenSource supplies the current bearer token. An empty token with a nil
// error means "no session"; the request then proceeds unauthenticated.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// Client performs envelope-based requests against the GetWay API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  TokenSource
	timeout time.Duration
	logger  *slog.Logger
}

// New creates a client for the configured base URL. tokens may be nil for
// a client that never authenticates.
func New(cfg config.ClientConfig, tokens TokenSource, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		timeout: cfg.Timeout,
		logger:  logger.With("component", "api"),
	}
}

type requestOptions struct {
	includeAuth bool
	timeout     time.Duration
}

// RequestOption adjusts a single request.
type RequestOption func(*requestOptions)

// WithoutAuth suppresses the Authorization header even when a token is stored.
func WithoutAuth() RequestOption {
	return func(o *requestOptions) { o.includeAuth = false }
}

// WithTimeout overrides the configured per-request deadline.
func WithTimeout(d time.Duration) RequestOption {
	return func(o *requestOptions) { o.timeout = d }
}

// Do performs one request and returns the parsed envelope.
//
// A 2xx response is returned verbatim, including envelopes with
// status "error": interpreting the status field is the caller's job.
// A non-2xx response, a timeout, or a transport failure yields an *Error.
// Cancellation of ctx by the caller is passed through untranslated so
// callers can recognize their own aborts.
func (c *Client) Do(ctx context.Context, method, path string, body any, opts ...RequestOption) (*model.Response, error) {
	ro := requestOptions{includeAuth: true, timeout: c.timeout}
	for _, opt := range opts {
		opt(&ro)
	}

	ctx, cancel := context.WithTimeout(ctx, ro.timeout)
	defer cancel()

	var bodyReader io.Reader
	if body != nil && hasBody(method) {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, genericError("encode request body", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, genericError("build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	if ro.includeAuth && c.tokens != nil {
		tok, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read stored token: %w", err)
		}
		if tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	c.logger.Debug("request", "method", method, "path", path, "auth", ro.includeAuth)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, c.classify(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.classify(ctx, err)
	}

	c.logger.Debug("response", "method", method, "path", path, "status", resp.StatusCode, "bytes", len(respBody))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, statusError(resp.StatusCode, respBody)
	}

	var env model.Response
	if err := json.Unmarshal(respBody, &env); err != nil {
		return nil, genericError(fmt.Sprintf("malformed response (status %d)", resp.StatusCode), err)
	}
	return &env, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, opts ...RequestOption) (*model.Response, error) {
	return c.Do(ctx, http.MethodGet, path, nil, opts...)
}

// Post performs a POST request with an optional JSON body.
func (c *Client) Post(ctx context.Context, path string, body any, opts ...RequestOption) (*model.Response, error) {
	return c.Do(ctx, http.MethodPost, path, body, opts...)
}

// Put performs a PUT request with an optional JSON body.
func (c *Client) Put(ctx context.Context, path string, body any, opts ...RequestOption) (*model.Response, error) {
	return c.Do(ctx, http.MethodPut, path, body, opts...)
}

// Patch performs a PATCH request with an optional JSON body.
func (c *Client) Patch(ctx context.Context, path string, body any, opts ...RequestOption) (*model.Response, error) {
	return c.Do(ctx, http.MethodPatch, path, body, opts...)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts ...RequestOption) (*model.Response, error) {
	return c.Do(ctx, http.MethodDelete, path, nil, opts...)
}

func hasBody(method string) bool {
	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch:
		return true
	}
	return false
}

// classify maps a transport-level error onto the taxonomy. The deadline set
// by Do surfaces as KindTimeout; cancellation by the caller is returned as-is.
func (c *Client) classify(ctx context.Context, err error) error {
	if errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
		return ctx.Err()
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return timeoutError(err)
	}
	var ue *url.Error
	if errors.As(err, &ue) {
		if ue.Timeout() {
			return timeoutError(err)
		}
		return networkError(err)
	}
	return genericError("request failed", err)
}

// statusError builds a KindHTTPStatus error, preferring the server's own
// message and errors array when the body parses as an envelope.
func statusError(code int, body []byte) *Error {
	e := &Error{Kind: KindHTTPStatus, StatusCode: code}
	var env model.Response
	if err := json.Unmarshal(body, &env); err == nil && env.Message != "" {
		e.Message = env.Message
		e.Details = env.Errors
		return e
	}
	e.Message = fmt.Sprintf("HTTP %d: %s", code, http.StatusText(code))
	return e
}
