package towerbridge

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
)

// HTTPTransport executes requests against the live API through one shared
// http.Client. The connect timeout bounds dialing; the read timeout
// bounds the whole attempt including the body. The underlying connection
// pool is safe for concurrent use and is the only resource calls share.
type HTTPTransport struct {
	baseURL string
	client  *http.Client
}

// NewHTTPTransport builds the production transport for cfg.
func NewHTTPTransport(cfg Config) *HTTPTransport {
	dialer := &net.Dialer{Timeout: cfg.ConnectTimeout}
	return &HTTPTransport{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client: &http.Client{
			Timeout: cfg.ReadTimeout,
			Transport: &http.Transport{
				Proxy:       http.ProxyFromEnvironment,
				DialContext: dialer.DialContext,
			},
		},
	}
}

// RoundTrip performs one GET and returns the exchange verbatim. Every
// complete HTTP response is a non-error outcome here, whatever its
// status; only transport-level failures return an error.
func (t *HTTPTransport) RoundTrip(ctx context.Context, req *APIRequest) (*APIResponse, error) {
	q := url.Values{}
	for k, v := range req.Query {
		q.Set(k, v)
	}
	fullURL := t.baseURL + req.Endpoint
	if len(q) > 0 {
		fullURL += "?" + q.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := t.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	headers := make(map[string]string, len(resp.Header))
	for k, vals := range resp.Header {
		if len(vals) > 0 {
			headers[strings.ToLower(k)] = vals[0]
		}
	}
	return &APIResponse{
		StatusCode: resp.StatusCode,
		Headers:    headers,
		Body:       body,
	}, nil
}
