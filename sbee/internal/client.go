// Copyright (c) 2025 BVK Chaitanya

package internal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Client performs raw HTTP round trips to the gateway. It is safe for
// concurrent use.
type Client struct {
	opts Options

	client http.Client
}

// New returns a new client instance.
func New(opts *Options) (*Client, error) {
	if opts == nil {
		opts = new(Options)
	}
	opts.setDefaults()
	if err := opts.Check(); err != nil {
		return nil, err
	}
	c := &Client{
		opts: *opts,
		client: http.Client{
			Timeout: opts.HttpClientTimeout,
		},
	}
	return c, nil
}

// Close releases resources and destroys the client instance.
func (c *Client) Close() error {
	c.client.CloseIdleConnections()
	return nil
}

// Invoke performs a single GET or POST round trip to addrURL.
//
// Headers are "Name: Value" strings split on the first colon; entries without
// a colon are ignored. Body is attached only for POST requests with a
// non-empty body.
//
// A non-nil error is returned only when the request could not be formed at
// all, like for an unsupported method. All failures after that point are
// reported through the returned Outcome.
func (c *Client) Invoke(ctx context.Context, method, addrURL string, headers []string, body string) (*Outcome, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("%w %q: only GET and POST are supported", ErrInvalidMethod, method)
	}

	var reqBody io.Reader
	if method == http.MethodPost && len(body) > 0 {
		reqBody = strings.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, addrURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("could not create http request: %w", err)
	}
	setHeaders(req.Header, headers)
	if reqBody != nil && !hasHeader(req.Header, "Content-Type") {
		req.Header.Set("Content-Type", "application/json")
	}

	s := time.Now()
	resp, err := c.client.Do(req)
	if d := time.Since(s); d > c.opts.HttpClientTimeout {
		slog.Warn(fmt.Sprintf("%s request took %s which is more than the http client timeout %s", method, d, c.opts.HttpClientTimeout))
	}
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not perform http request", "method", method, "url", req.URL.Redacted(), "err", err)
		}
		return transportFailed(err), nil
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			slog.Error("could not read http response body", "method", method, "url", req.URL.Redacted(), "err", err)
		}
		return transportFailed(err), nil
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Warn("http request returned unsuccessful status code", "method", method, "url", req.URL.Redacted(), "status-code", resp.StatusCode)
		slog.Debug("server response", "body", string(data))
		return httpFailed(resp.StatusCode, data), nil
	}
	return succeeded(resp.StatusCode, data), nil
}

// setHeaders adds the "Name: Value" entries into h keeping the name casing as
// given by the caller.
func setHeaders(h http.Header, headers []string) {
	for _, hdr := range headers {
		name, value, ok := strings.Cut(hdr, ":")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if len(name) == 0 {
			continue
		}
		h[name] = append(h[name], strings.TrimSpace(value))
	}
}

func hasHeader(h http.Header, name string) bool {
	for k := range h {
		if strings.EqualFold(k, name) {
			return true
		}
	}
	return false
}
