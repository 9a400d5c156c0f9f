package httpclient

import (
	"errors"
	"fmt"
	"net/http"
)

// maxErrorBody bounds how much of a failed response is kept on the error
const maxErrorBody = 512

// HTTPError is returned when the upstream answers with a non-2xx status
type HTTPError struct {
	StatusCode int
	URL        string
	// Body is the start of the response body, useful for upstream error payloads
	Body string
}

func (e *HTTPError) Error() string {
	msg := fmt.Sprintf("HTTP %d from %s", e.StatusCode, e.URL)
	if text := http.StatusText(e.StatusCode); text != "" {
		msg += " (" + text + ")"
	}
	if e.Body != "" {
		msg += ": " + e.Body
	}
	return msg
}

// Temporary reports whether the same request may succeed later: rate limits
// and server-side failures are, other client errors are not.
func (e *HTTPError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// NewHTTPError creates an HTTPError, truncating body to a short excerpt
func NewHTTPError(statusCode int, url string, body []byte) error {
	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}
	return &HTTPError{
		StatusCode: statusCode,
		URL:        url,
		Body:       string(body),
	}
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not an HTTPError
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode
	}
	return 0
}
