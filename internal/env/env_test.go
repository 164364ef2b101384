//go:build !js || !wasm

package env

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGetOrDefault(t *testing.T) {
	t.Setenv("NAGER_TEST_VALUE", "")
	assert.Equal(t, "fallback", GetOrDefault("NAGER_TEST_VALUE", "fallback"))

	t.Setenv("NAGER_TEST_VALUE", "set")
	assert.Equal(t, "set", GetOrDefault("NAGER_TEST_VALUE", "fallback"))
}

func TestGetDurationOrDefault(t *testing.T) {
	testCases := []struct {
		name     string
		value    string
		expected time.Duration
	}{
		{name: "unset", value: "", expected: 10 * time.Second},
		{name: "valid", value: "3s", expected: 3 * time.Second},
		{name: "garbage", value: "soon", expected: 10 * time.Second},
		{name: "negative", value: "-1s", expected: 10 * time.Second},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("NAGER_TEST_TIMEOUT", tc.value)
			assert.Equal(t, tc.expected, GetDurationOrDefault("NAGER_TEST_TIMEOUT", 10*time.Second))
		})
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 5*time.Second, parseDuration("1m", false, 5*time.Second))
	assert.Equal(t, time.Minute, parseDuration("1m", true, 5*time.Second))
	assert.Equal(t, 5*time.Second, parseDuration("0s", true, 5*time.Second))
}
