package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetReturnsDecodedValue(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `[{"countryCode":"AD","name":"Andorra"}]`)
	}))
	defer srv.Close()

	got, err := Get(context.Background(), newTestClient(srv.URL), Request{Path: "/AvailableCountries"})

	require.NoError(t, err)
	rows, ok := got.([]any)
	require.True(t, ok, "expected array, got %T", got)
	require.Len(t, rows, 1)
	assert.Equal(t, map[string]any{"countryCode": "AD", "name": "Andorra"}, rows[0])
}

func TestGetMalformedJSON(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{name: "truncated", body: `[{"countryCode": "AD"`},
		{name: "html", body: `<html>maintenance</html>`},
		{name: "empty", body: ``},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, tc.body)
			}))
			defer srv.Close()

			_, err := Get(context.Background(), newTestClient(srv.URL), Request{Path: "/AvailableCountries"})

			var decodeErr *DecodeError
			require.ErrorAs(t, err, &decodeErr)
			assert.True(t, errors.Is(err, ErrInvalidJSON))
			assert.Equal(t, srv.URL+"/AvailableCountries", decodeErr.URL)
		})
	}
}

func TestDecodeShapeMismatch(t *testing.T) {
	resp := &Response{URL: "https://example.test/AvailableCountries", StatusCode: 200, Body: []byte(`{"title":"x"}`)}

	var rows []map[string]any
	err := resp.Decode(&rows)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.False(t, errors.Is(err, ErrInvalidJSON))
	assert.Contains(t, err.Error(), "could not decode response from https://example.test/AvailableCountries")
}

func TestDecodeErrorFieldMessage(t *testing.T) {
	err := &DecodeError{Field: "date", Value: "2022-13-45", Err: errors.New("month out of range")}
	assert.Equal(t, `could not decode date "2022-13-45": month out of range`, err.Error())
}

func TestRemoteAPIErrorTruncatesOnRuneBoundary(t *testing.T) {
	body := strings.Repeat("a", 199) + "€€€" + strings.Repeat("b", 50)
	err := &RemoteAPIError{URL: "https://example.test/Version", StatusCode: 502, Body: []byte(body)}

	msg := err.Error()

	assert.True(t, utf8.ValidString(msg), "message is not valid UTF-8: %q", msg)
	assert.True(t, strings.HasSuffix(msg, strings.Repeat("a", 199)+"..."))
}

func TestTruncate(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		n        int
		expected string
	}{
		{name: "short", input: "Not Found", n: 200, expected: "Not Found"},
		{name: "ascii", input: "abcdef", n: 3, expected: "abc..."},
		{name: "inside multibyte", input: "ab€cd", n: 3, expected: "ab..."},
		{name: "after multibyte", input: "ab€cd", n: 5, expected: "ab€..."},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, truncate(tc.input, tc.n))
		})
	}
}
