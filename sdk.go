// sdk.go
// ------
// The sdk.go file contains the core Client struct and its methods.
// This is the main entry point of the SDK for users.
//
// Key functionalities include:
// - Building a client with NewClient() from a Config and a token source
// - Making authenticated API calls via client.Do()
// - Attaching a structured logger with SetLogger()
//
// The Client delegates every call to a RequestExecutor, which handles
// credential injection, retries, and response decoding.
package towerbridge

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"
)

// Client is a thin, immutable handle over a configured RequestExecutor.
// Build one per upstream API and share it freely across goroutines.
type Client struct {
	cfg      Config
	executor *RequestExecutor
}

// NewClient builds a client from cfg and tokens. Zero-valued config
// fields are filled with defaults; when cfg.Transport is nil an HTTP
// transport is constructed from the config's base URL and timeouts.
func NewClient(cfg Config, tokens oauth2.TokenSource) (*Client, error) {
	cfg = cfg.withDefaults()
	transport := cfg.Transport
	if transport == nil {
		transport = NewHTTPTransport(cfg)
	}
	executor, err := NewRequestExecutor(transport, tokens, cfg.Retry, zerolog.Nop())
	if err != nil {
		return nil, err
	}
	return &Client{cfg: cfg, executor: executor}, nil
}

// StaticToken wraps a fixed API token in an oauth2.TokenSource, the
// common case for Sensor Tower credentials read from the environment.
func StaticToken(token string) oauth2.TokenSource {
	return oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
}

// SetLogger attaches a structured logger to the client. Every call gets
// a child logger carrying a fresh call_id and the endpoint path. The
// default is a no-op logger.
func (c *Client) SetLogger(log zerolog.Logger) {
	c.executor.log = log
}

// Do performs one authenticated GET against endpoint with params and
// returns the decoded response payload.
func (c *Client) Do(ctx context.Context, endpoint string, params Params) (Payload, error) {
	return c.executor.Do(ctx, endpoint, params)
}

// BaseURL reports the API origin the client was configured with.
func (c *Client) BaseURL() string {
	return c.cfg.BaseURL
}
