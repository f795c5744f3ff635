// Package transport provides an HTTP client that attaches credentials and
// default headers to every request and decodes JSON answers into typed errors.
package transport

import (
	"context"
	"net/http"

	"golang.org/x/oauth2"

	"github.com/asakit/asakit/pkg/constants"
	"github.com/asakit/asakit/pkg/errors"
	"github.com/asakit/asakit/pkg/logging"
)

// DefaultHTTPTimeout is the default timeout for HTTP requests.
var DefaultHTTPTimeout = constants.DefaultHTTPTimeout

// Client provides HTTP client functionality with authentication.
type Client struct {
	http    *http.Client
	auth    Authenticator
	tokens  oauth2.TokenSource
	key     string
	headers http.Header
	service string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTokenSource obtains the credential from ts before every request.
// The authenticator defaults to BearerAuth when none was given.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithAPIKey uses a static credential.
func WithAPIKey(key string) Option {
	return func(c *Client) {
		c.key = key
	}
}

// WithHeader adds a header sent with every request.
func WithHeader(key, value string) Option {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// WithService names the remote service in errors.
func WithService(name string) Option {
	return func(c *Client) {
		c.service = name
	}
}

// New creates a new transport client with the specified authenticator.
// A nil authenticator means BearerAuth.
func New(auth Authenticator, opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{Timeout: DefaultHTTPTimeout},
		auth:    auth,
		headers: make(http.Header),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.auth == nil {
		c.auth = &BearerAuth{}
	}
	return c
}

// Do performs an HTTP request with authentication and default headers applied.
func (c *Client) Do(ctx context.Context, req *http.Request) (*http.Response, error) {
	req = req.WithContext(ctx)

	credential := c.key
	if c.tokens != nil {
		tok, err := c.tokens.Token()
		if err != nil {
			return nil, &errors.AuthenticationError{
				Service: c.service,
				Method:  "oauth2_client_credentials",
				Message: "failed to obtain access token",
				Err:     err,
			}
		}
		credential = tok.AccessToken
	}
	if credential != "" {
		c.auth.Apply(req, credential)
	}

	for key, values := range c.headers {
		req.Header[key] = values
	}
	req.Header.Set("Accept", "application/json")
	if req.Method == http.MethodPost || req.Method == http.MethodPut || req.Method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Str("method", req.Method).Str("url", req.URL.String()).Msg("HTTP request failed")
		if ctx.Err() != nil {
			return nil, &errors.TimeoutError{Operation: req.Method + " " + req.URL.Path, Message: ctx.Err().Error()}
		}
		return nil, errors.WrapResource("send", "request", req.Method+" "+req.URL.String(), err)
	}
	logging.FromContext(ctx).Debug().
		Str("method", req.Method).
		Str("url", req.URL.String()).
		Int("status", resp.StatusCode).
		Msg("HTTP request")
	return resp, nil
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WrapResource("create", "request", "GET "+url, err)
	}
	return c.Do(ctx, req)
}

// GetJSON performs a GET request and decodes the JSON answer into target.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	resp, err := c.Get(ctx, url)
	if err != nil {
		return err
	}
	return decode(resp, c.service, target)
}
