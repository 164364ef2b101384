//go:build js && wasm

package http

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/syumai/workers/cloudflare/fetch"
)

// WorkersHTTPClient implements HTTPClient for Cloudflare Workers
type WorkersHTTPClient struct {
	client  *fetch.Client
	timeout time.Duration
}

// NewHTTPClient creates a new HTTP client for Workers environment
func NewHTTPClient(timeout time.Duration) HTTPClient {
	return &WorkersHTTPClient{
		client:  fetch.NewClient(),
		timeout: timeout,
	}
}

// Do performs an HTTP request using Cloudflare Workers fetch
func (c *WorkersHTTPClient) Do(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	fetchReq, err := fetch.NewRequest(ctx, req.Method, req.URL.String(), req.Body)
	if err != nil {
		return nil, err
	}

	for key, values := range req.Header {
		for _, value := range values {
			fetchReq.Header.Set(key, value)
		}
	}

	resp, err := c.client.Do(fetchReq, nil)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	// drain before the deadline's cancel fires
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))
	return resp, nil
}
