package ashby

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRetriesExhausted is returned when every attempt of a request failed
	ErrRetriesExhausted = errors.New("ashby: retries exhausted")

	// ErrPageLimitExceeded is returned when a listing does not terminate within the page limit
	ErrPageLimitExceeded = errors.New("ashby: page limit exceeded")

	// ErrEmptyResult is returned when an info endpoint returns no record
	ErrEmptyResult = errors.New("ashby: empty result")

	// ErrMissingID marks a record without an external id
	ErrMissingID = errors.New("ashby: record has no id")
)

// APIError is an application-level failure reported with success=false
type APIError struct {
	Endpoint  string
	ErrorInfo json.RawMessage
	Errors    []string
}

// Error returns the error message
func (e *APIError) Error() string {
	detail := strings.Join(e.Errors, "; ")
	if len(e.ErrorInfo) > 0 {
		if detail != "" {
			detail += " "
		}
		detail += string(e.ErrorInfo)
	}
	if detail == "" {
		detail = "no error info"
	}
	return fmt.Sprintf("ashby API reported failure for %s: %s", e.Endpoint, detail)
}
