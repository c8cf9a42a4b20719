package share

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryParam is the query parameter that carries a level token.
const QueryParam = "level"

// ShareURL embeds a token in base as the level query parameter.
// Existing query parameters on base are kept.
func ShareURL(base, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("share: bad base url %q: %w", base, err)
	}
	q := u.Query()
	q.Set(QueryParam, token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// TokenFromURL extracts a token from a share URL.
// Input that does not look like a URL is returned as the token itself.
func TokenFromURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "?") {
		return raw
	}
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	if t := u.Query().Get(QueryParam); t != "" {
		return t
	}
	return raw
}
