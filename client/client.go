// Package client is the request layer for the Nager.Date API: it builds
// URLs, performs GETs and classifies failures into TransportError,
// RemoteAPIError and DecodeError. Each call is a single attempt.
package client

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dvcrn/nager-date-go/internal/env"
	httpclient "github.com/dvcrn/nager-date-go/internal/http"
	"github.com/dvcrn/nager-date-go/internal/logger"
)

const (
	DefaultBaseURL   = "https://date.nager.at/api/v3"
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "nager-date-go"
)

// HTTPClient is satisfied by *http.Client.
type HTTPClient = httpclient.HTTPClient

// Caller performs a single request. *Client implements it; tests substitute
// their own.
type Caller interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// Client talks to the API over HTTP.
type Client struct {
	httpClient HTTPClient
	baseURL    string
	timeout    time.Duration
	userAgent  string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root, e.g. for a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithTimeout bounds each request. Ignored when WithHTTPClient is used.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// New creates a Client. Defaults come from NAGER_BASE_URL and NAGER_TIMEOUT.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL:   env.GetOrDefault("NAGER_BASE_URL", DefaultBaseURL),
		timeout:   env.GetDurationOrDefault("NAGER_TIMEOUT", DefaultTimeout),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient == nil {
		c.httpClient = httpclient.NewHTTPClient(c.timeout)
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return c
}

// BaseURL returns the API root requests are sent to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs a GET for req. Non-2xx responses fail with *RemoteAPIError;
// the body of a successful response is returned undecoded.
func (c *Client) Do(ctx context.Context, req Request) (*Response, error) {
	target, err := buildURL(c.baseURL, req)
	if err != nil {
		return nil, err
	}

	requestID := uuid.NewString()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("could not create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("User-Agent", c.userAgent)
	httpReq.Header.Set("X-Request-ID", requestID)

	logger.Get().Debug().
		Str("request_id", requestID).
		Str("url", target).
		Msg("Request URL")

	start := time.Now()
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: target, RequestID: requestID, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: target, RequestID: requestID, Err: fmt.Errorf("could not read response body: %w", err)}
	}

	logger.Get().Debug().
		Str("request_id", requestID).
		Str("url", target).
		Int("status_code", resp.StatusCode).
		Int("response_size", len(body)).
		Dur("duration", time.Since(start)).
		Msg("HTTP request complete")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &RemoteAPIError{
			URL:        target,
			RequestID:  requestID,
			StatusCode: resp.StatusCode,
			Body:       body,
		}
	}

	return &Response{
		URL:        target,
		StatusCode: resp.StatusCode,
		Body:       body,
		RequestID:  requestID,
	}, nil
}
