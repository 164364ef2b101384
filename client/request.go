package client

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// Request describes a GET against the API. Path is a template such as
// "/PublicHolidays/{year}/{countryCode}".
type Request struct {
	Path       string
	PathParams map[string]string
	Query      url.Values
}

// resolvePath substitutes every placeholder in Path, escaping values.
func (r Request) resolvePath() (string, error) {
	var missing []string
	path := placeholderPattern.ReplaceAllStringFunc(r.Path, func(match string) string {
		name := match[1 : len(match)-1]
		value, ok := r.PathParams[name]
		if !ok || value == "" {
			missing = append(missing, name)
			return match
		}
		return url.PathEscape(value)
	})
	if len(missing) > 0 {
		return "", fmt.Errorf("%w %s in %s", ErrMissingPathParam, strings.Join(missing, ", "), r.Path)
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return path, nil
}

// encodeQuery drops empty values so optional parameters can be passed unset.
func (r Request) encodeQuery() string {
	if len(r.Query) == 0 {
		return ""
	}
	q := url.Values{}
	for key, values := range r.Query {
		for _, v := range values {
			if v != "" {
				q.Add(key, v)
			}
		}
	}
	return q.Encode()
}

// buildURL joins base, resolved path and query.
func buildURL(baseURL string, r Request) (string, error) {
	path, err := r.resolvePath()
	if err != nil {
		return "", err
	}
	u, err := url.Parse(strings.TrimRight(baseURL, "/") + path)
	if err != nil {
		return "", fmt.Errorf("parse url: %w", err)
	}
	u.RawQuery = r.encodeQuery()
	return u.String(), nil
}
