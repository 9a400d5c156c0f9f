// Package auth provides bearer-token protection for the administrative API.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// AdminClaim is the boolean claim that grants administrative access
const AdminClaim = "is_admin"

// RFC 6750 Section 3 error codes
const (
	errorCodeInvalidRequest   = "invalid_request"
	errorCodeInvalidToken     = "invalid_token"
	errorCodeInsufficientRole = "insufficient_scope"
)

const defaultRealm = "recruiting-server"

var errMissingBearer = errors.New("missing or malformed authorization header")

type claimsKey struct{}

// ClaimsFromContext returns the validated claims of the current request
func ClaimsFromContext(ctx context.Context) (jwt.MapClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(jwt.MapClaims)
	return claims, ok
}

// adminMiddleware admits requests that carry a valid token with the admin claim
type adminMiddleware struct {
	validator TokenValidator
	realm     string
}

func newAdminMiddleware(validator TokenValidator, realm string) *adminMiddleware {
	if realm == "" {
		realm = defaultRealm
	}
	return &adminMiddleware{validator: validator, realm: realm}
}

// Middleware rejects a missing or invalid token with 401 and a valid token
// without the admin claim with 403.
func (m *adminMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, err := extractBearerToken(r)
		if err != nil {
			slog.Warn("Token extraction failed",
				"error", err,
				"remote_addr", r.RemoteAddr,
				"path", r.URL.Path)
			m.writeError(w, http.StatusUnauthorized, errorCodeInvalidRequest, "Not authenticated")
			return
		}

		claims, err := m.validator.ValidateToken(r.Context(), token)
		if err != nil {
			slog.Warn("Token validation failed",
				"error", err,
				"remote_addr", r.RemoteAddr,
				"path", r.URL.Path)
			m.writeError(w, http.StatusUnauthorized, errorCodeInvalidToken, "Could not validate credentials")
			return
		}

		if !IsAdmin(claims) {
			slog.Warn("Non-admin token rejected",
				"subject", claims["sub"],
				"path", r.URL.Path)
			m.writeError(w, http.StatusForbidden, errorCodeInsufficientRole, "Admin privileges required")
			return
		}

		slog.Debug("Authentication successful",
			"subject", claims["sub"],
			"path", r.URL.Path)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), claimsKey{}, claims)))
	})
}

func extractBearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", errMissingBearer
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return "", errMissingBearer
	}
	return token, nil
}

// sanitizeHeaderValue strips CR and LF and escapes quotes for a quoted-string
func sanitizeHeaderValue(s string) string {
	if !strings.ContainsAny(s, "\r\n\"") {
		return s
	}
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")
	return strings.ReplaceAll(s, `"`, `\"`)
}

// writeError writes a JSON error with an RFC 6750 WWW-Authenticate header
func (m *adminMiddleware) writeError(w http.ResponseWriter, status int, errCode, description string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", fmt.Sprintf(`Bearer realm="%s", error="%s", error_description="%s"`,
		sanitizeHeaderValue(m.realm), errCode, sanitizeHeaderValue(description)))
	w.WriteHeader(status)

	resp := struct {
		Error string `json:"error"`
	}{
		Error: description,
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("Failed to encode error response", "error", err)
	}
}

// WrapWithPublicPaths wraps an auth middleware so requests to public paths
// skip it. See IsPublicPath for the matching rules.
func WrapWithPublicPaths(
	authMw func(http.Handler) http.Handler,
	publicPaths []string,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		authWrappedNext := authMw(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublicPath(r.URL.Path, publicPaths) {
				next.ServeHTTP(w, r)
				return
			}
			authWrappedNext.ServeHTTP(w, r)
		})
	}
}
