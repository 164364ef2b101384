package client

import (
	"context"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Response is a completed 2xx response with its full body.
type Response struct {
	URL        string
	StatusCode int
	Body       []byte
	RequestID  string
}

// Decode unmarshals the body into v. A body that is not valid JSON, or that
// does not fit v, fails with *DecodeError.
func (r *Response) Decode(v any) error {
	if !gjson.ValidBytes(r.Body) {
		return &DecodeError{URL: r.URL, Err: ErrInvalidJSON}
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return &DecodeError{URL: r.URL, Err: err}
	}
	return nil
}

// Get performs req and returns the decoded JSON value unchanged: a
// map[string]any for objects, []any for arrays.
func Get(ctx context.Context, c Caller, req Request) (any, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	var decoded any
	if err := resp.Decode(&decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
