package common

import (
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
)

// MaxPathIDLength bounds identifiers taken from the URL path. Ashby ids are
// UUIDs, so anything much longer is a malformed request.
const MaxPathIDLength = 128

// PathID returns the decoded chi URL parameter name. It rejects values that
// are empty, contain whitespace or exceed MaxPathIDLength.
func PathID(r *http.Request, name string) (string, error) {
	id, err := url.PathUnescape(chi.URLParam(r, name))
	if err != nil {
		return "", fmt.Errorf("invalid URL encoding in %s", name)
	}

	switch {
	case strings.TrimSpace(id) == "":
		return "", fmt.Errorf("%s cannot be empty", name)
	case strings.ContainsAny(id, " \t\n\r"):
		return "", fmt.Errorf("%s cannot contain whitespace", name)
	case len(id) > MaxPathIDLength:
		return "", fmt.Errorf("%s exceeds %d characters", name, MaxPathIDLength)
	}
	return id, nil
}
