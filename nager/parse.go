package nager

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dvcrn/nager-date-go/client"
	"github.com/dvcrn/nager-date-go/raw"
)

const dateLayout = "2006-01-02"

var errMissingDate = errors.New("missing date")

// Absent, null and wrongly typed optional fields read as zero values.

func stringField(row raw.Row, key string) string {
	s, _ := row[key].(string)
	return s
}

func boolField(row raw.Row, key string) bool {
	b, _ := row[key].(bool)
	return b
}

func intField(row raw.Row, key string) int {
	f, _ := row[key].(float64)
	return int(f)
}

// stringSetField returns the distinct strings of an array field, sorted.
func stringSetField(row raw.Row, key string) []string {
	values, _ := row[key].([]any)
	seen := make(map[string]struct{}, len(values))
	set := make([]string, 0, len(values))
	for _, v := range values {
		s, ok := v.(string)
		if !ok || s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		set = append(set, s)
	}
	sort.Strings(set)
	return set
}

// parseDate parses a yyyy-mm-dd value as a UTC date.
func parseDate(field string, value any) (time.Time, error) {
	s, ok := value.(string)
	if !ok || s == "" {
		return time.Time{}, &client.DecodeError{Field: field, Value: fmt.Sprint(value), Err: errMissingDate}
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, &client.DecodeError{Field: field, Value: s, Err: err}
	}
	return t, nil
}

func dateField(row raw.Row, key string) (time.Time, error) {
	return parseDate(key, row[key])
}
