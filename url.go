package portsift

import (
	"net/url"
	"strings"
)

// Signature returns the de-duplication key for a candidate URL: the
// lowercase host joined with the path. URLs differing only in scheme,
// query string, or fragment collapse to the same signature.
func Signature(rawURL string) string {
	raw := strings.ToLower(strings.TrimSpace(rawURL))
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	return u.Host + u.Path
}

// Host extracts the host portion of a URL, used for rate limiting and
// the active-host log. Returns "" for unparseable URLs.
func Host(rawURL string) string {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return ""
	}
	return u.Host
}
