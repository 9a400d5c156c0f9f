package auth

import (
	"path"
	"strings"
)

// DefaultPublicPaths never require a token. The webhook authenticates with its own HMAC signature.
var DefaultPublicPaths = []string{
	"/health",
	"/readiness",
	"/version",
	"/metrics",
	"/ashby/webhook",
}

// IsPublicPath reports whether requestPath falls under one of publicPaths.
// Matching happens on cleaned paths and whole segments, so /health covers
// /health/live but not /healthz. Paths with encoded separators never match.
func IsPublicPath(requestPath string, publicPaths []string) bool {
	lower := strings.ToLower(requestPath)
	if strings.Contains(lower, "%2f") || strings.Contains(lower, "%2e") {
		return false
	}

	p := rooted(requestPath)
	for _, public := range publicPaths {
		prefix := rooted(public)
		if prefix == "/" || p == prefix || strings.HasPrefix(p, prefix+"/") {
			return true
		}
	}
	return false
}

func rooted(p string) string {
	return path.Clean("/" + p)
}
