// Package common holds the response, request-body and path helpers shared
// by every API router.
package common

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
)

// DefaultMaxBodySize bounds JSON request bodies unless a router picks its own limit
const DefaultMaxBodySize int64 = 1 << 20

// ErrorResponse is the body of every non-2xx JSON response
type ErrorResponse struct {
	Error string `json:"error"`
}

// WriteJSONResponse writes data as JSON with the given status code
func WriteJSONResponse(w http.ResponseWriter, data any, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		// Headers are already sent; all that is left is to note it
		slog.Warn("Failed to encode response", "status", statusCode, "error", err)
	}
}

// WriteErrorResponse writes {"error": message} with the given status code
func WriteErrorResponse(w http.ResponseWriter, message string, statusCode int) {
	WriteJSONResponse(w, ErrorResponse{Error: message}, statusCode)
}

// DecodeJSONBody decodes the request body into dst, reading at most limit
// bytes. On failure it writes a 413 or 400 response and returns false.
func DecodeJSONBody(w http.ResponseWriter, r *http.Request, dst any, limit int64) bool {
	if limit <= 0 {
		limit = DefaultMaxBodySize
	}
	r.Body = http.MaxBytesReader(w, r.Body, limit)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			WriteErrorResponse(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return false
		}
		WriteErrorResponse(w, fmt.Sprintf("Invalid request body: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}
