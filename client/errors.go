package client

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"unicode/utf8"

	"github.com/tidwall/gjson"
)

var (
	// ErrMissingPathParam is returned before any I/O when a path template
	// placeholder has no value.
	ErrMissingPathParam = errors.New("missing path parameter")

	// ErrInvalidJSON marks a body that is not well-formed JSON.
	ErrInvalidJSON = errors.New("response body is not valid JSON")
)

// TransportError reports a request that never produced a complete response:
// connection failures, timeouts, cancellation and body read errors.
type TransportError struct {
	URL       string
	RequestID string
	Err       error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Timeout reports whether the failure was a deadline.
func (e *TransportError) Timeout() bool {
	if errors.Is(e.Err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(e.Err, &netErr) && netErr.Timeout()
}

// RemoteAPIError is a non-2xx response. Status code and raw body are kept
// as received.
type RemoteAPIError struct {
	URL        string
	RequestID  string
	StatusCode int
	Body       []byte
}

func (e *RemoteAPIError) Error() string {
	detail := e.Title()
	if detail == "" {
		detail = truncate(string(e.Body), 200)
	}
	if detail == "" {
		detail = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("GET %s failed with status %d: %s", e.URL, e.StatusCode, detail)
}

// truncate cuts s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	cut := n
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}

// Title returns the "title" of a problem-details body, or "" when the body
// carries none.
func (e *RemoteAPIError) Title() string {
	if !gjson.ValidBytes(e.Body) {
		return ""
	}
	return gjson.GetBytes(e.Body, "title").String()
}

// NotFound reports a 404, which the service uses for unknown country codes.
func (e *RemoteAPIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// DecodeError reports a body or field that could not be decoded. Field and
// Value are set when a single value (such as a date) was malformed.
type DecodeError struct {
	URL   string
	Field string
	Value string
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("could not decode %s %q: %v", e.Field, e.Value, e.Err)
	}
	return fmt.Sprintf("could not decode response from %s: %v", e.URL, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
