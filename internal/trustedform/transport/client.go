// Package transport performs the HTTP exchange an adapter's request describes.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"trustedform/internal/trustedform/providers"
	"trustedform/pkg/requestcontext"
)

const (
	defaultTimeout = 10 * time.Second
	// maxBodyBytes bounds how much of a response is read.
	maxBodyBytes = 4 << 20
)

// Doer sends one adapter request.
type Doer interface {
	Do(ctx context.Context, req *providers.Request) (*providers.Response, error)
}

// Client is a Doer backed by net/http.
type Client struct {
	http    *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) { cl.http = c }
}

// WithTimeout bounds each exchange.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) {
		if d > 0 {
			cl.timeout = d
		}
	}
}

// New creates a transport client.
func New(opts ...Option) *Client {
	c := &Client{
		http:    &http.Client{},
		timeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do sends req. Any HTTP status is a response; only failures to get one are
// returned as errors, classified into the provider error taxonomy.
func (c *Client) Do(ctx context.Context, req *providers.Request) (*providers.Response, error) {
	module := requestcontext.Module(ctx)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, bytes.NewReader(req.Body))
	if err != nil {
		return nil, providers.NewProviderError(providers.ErrorBadData, module, "build request", err)
	}
	for k, v := range req.Header {
		httpReq.Header[k] = append([]string(nil), v...)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, providers.Classify(module, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, providers.Classify(module, fmt.Errorf("read response body: %w", err))
	}

	return &providers.Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   body,
	}, nil
}

var _ Doer = (*Client)(nil)
