// Package client is a typed client for the freight matching HTTP API.
//
// Mutating calls are checked against the local lifecycle rules first, so a
// missing reject reason or a forbidden action fails without a round trip.
// Nothing is retried: a Conflict means the data changed and the caller decides.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"freight-matching-platform/internal/apperr"
	"freight-matching-platform/internal/auth"
	"freight-matching-platform/internal/lifecycle"
	"freight-matching-platform/internal/logx"
)

const maxResponseBytes = 4 << 20

// Client talks to one API base URL. It is safe for concurrent use.
type Client struct {
	baseURL *url.URL
	http    *http.Client
	locale  string
	logger  logx.Logger

	mu    sync.RWMutex
	token string
	actor *lifecycle.Actor
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithLocale sets the Accept-Language sent with every request.
func WithLocale(lang string) Option {
	return func(c *Client) { c.locale = strings.TrimSpace(lang) }
}

// WithLogger sets the logger used for request tracing.
func WithLogger(l logx.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithToken starts the client with an existing access token.
func WithToken(token string) Option {
	return func(c *Client) { c.SetToken(token) }
}

// New creates a Client for baseURL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: invalid base URL %q", apperr.Invalid, baseURL)
	}
	c := &Client{
		baseURL: u,
		http:    &http.Client{Timeout: 15 * time.Second},
		logger:  logx.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// SetToken installs an access token. The actor is read from its claims
// without verifying the signature; the server remains the authority.
func (c *Client) SetToken(token string) {
	token = strings.TrimSpace(token)
	var actor *lifecycle.Actor
	if token != "" {
		claims := &auth.Claims{}
		if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
			a := lifecycle.Actor{
				Role:      claims.Role,
				UserID:    claims.UserID(),
				CarrierID: claims.CarrierID,
				DriverID:  claims.DriverID,
			}
			actor = &a
		}
	}
	c.setSession(token, actor)
}

func (c *Client) setSession(token string, actor *lifecycle.Actor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.token = token
	c.actor = actor
}

// Token returns the current access token, empty when logged out.
func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Actor returns the caller as far as the client knows it.
func (c *Client) Actor() (lifecycle.Actor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.actor == nil {
		return lifecycle.Actor{}, false
	}
	return *c.actor, true
}

type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Code    string `json:"code"`
}

// do sends one request and decodes the payload into out. The returned string
// is the server's success message.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, in, out any) (string, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + path
	u.RawQuery = query.Encode()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return "", fmt.Errorf("encode request: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.locale != "" {
		req.Header.Set("Accept-Language", c.locale)
	}
	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("api request failed",
			logx.String("method", method),
			logx.String("path", path),
			logx.Err(err),
		)
		return "", transportError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", transportError(err)
	}
	c.logger.Debug("api request",
		logx.String("method", method),
		logx.String("path", path),
		logx.Int("status", resp.StatusCode),
		logx.Duration("duration", time.Since(start)),
	)

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusBadRequest {
			return "", newAPIError(resp.StatusCode, "", "")
		}
		return "", &APIError{
			Status:  resp.StatusCode,
			Code:    apperr.Code(apperr.RemoteFailure),
			Message: "malformed response from server",
			Kind:    apperr.RemoteFailure,
		}
	}
	if !env.Success {
		return "", newAPIError(resp.StatusCode, env.Code, env.Error)
	}
	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return "", &APIError{
				Status:  resp.StatusCode,
				Code:    apperr.Code(apperr.RemoteFailure),
				Message: fmt.Sprintf("unexpected response shape: %v", err),
				Kind:    apperr.RemoteFailure,
			}
		}
	}
	return env.Message, nil
}

// localError reports a failure detected before sending anything.
func localError(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return err
	}
	kind := apperr.FromCode(apperr.Code(err))
	if kind == nil {
		return err
	}
	return &APIError{Code: apperr.Code(kind), Message: err.Error(), Kind: kind}
}
