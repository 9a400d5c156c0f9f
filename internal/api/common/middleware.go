package common

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

// Timeout returns chi's timeout middleware, or a pass-through when d is not positive
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	if d <= 0 {
		return func(next http.Handler) http.Handler {
			return next
		}
	}
	return middleware.Timeout(d)
}

// WithoutWriteDeadline clears the server write deadline so handlers that
// run a long sync or completion can still deliver their response.
func WithoutWriteDeadline(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil {
			slog.Debug("Could not clear write deadline", "path", r.URL.Path, "error", err)
		}
		next.ServeHTTP(w, r)
	})
}
