package env

import "time"

// parseDuration returns fallback for unset, unparsable or non-positive values.
func parseDuration(value string, ok bool, fallback time.Duration) time.Duration {
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
