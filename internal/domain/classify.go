package domain

import (
	"net/url"
	"strings"
)

// MainDomain derives a comparable site identity from a URL using a
// registrable-domain heuristic:
//
//   - two labels or fewer: the hostname unchanged ("example.com")
//   - exactly three labels with a middle label of at most two characters:
//     the hostname unchanged ("example.co.uk")
//   - anything deeper: the last two labels ("www.example.com" -> "example.com")
//
// This is an approximation, not a public-suffix-list lookup; hosts like
// "example.com.au" will be trimmed to "com.au". A URL that cannot be parsed
// or carries no host classifies to the empty string, which callers must
// treat as "unclassifiable", never as a wildcard.
func MainDomain(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	host := u.Hostname()
	if host == "" {
		return ""
	}
	parts := strings.Split(host, ".")
	switch {
	case len(parts) <= 2:
		return host
	case len(parts) == 3 && len(parts[1]) <= 2:
		return host
	default:
		return strings.Join(parts[len(parts)-2:], ".")
	}
}

// HostIdentity returns the bare hostname of a URL, or "" when it cannot be
// parsed. It stands in for an IP-level identity: real DNS resolution was
// never wired in, so today this is a second hostname comparison.
func HostIdentity(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
