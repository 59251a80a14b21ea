package auth

import (
	"net/url"
	"strings"
)

const DefaultReturnTo = "/account"

// SanitizeReturnTo accepts only same-site absolute paths. Anything else,
// including protocol-relative "//host" forms, yields "".
func SanitizeReturnTo(raw string) string {
	if raw == "" {
		return ""
	}
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return ""
	}
	if !strings.HasPrefix(decoded, "/") || strings.HasPrefix(decoded, "//") || strings.HasPrefix(decoded, `/\`) {
		return ""
	}
	return decoded
}

// WithAuthHint appends auth=success&provider=... to a sanitized destination.
func WithAuthHint(dest, provider string) string {
	sep := "?"
	if strings.Contains(dest, "?") {
		sep = "&"
	}
	return dest + sep + "auth=success&provider=" + url.QueryEscape(provider)
}
