package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/hrops/recruiting-server/internal/config"
)

// NewAuthMiddleware creates the admin authentication middleware from config.
// Without a JWT secret every request is let through.
func NewAuthMiddleware(cfg *config.AuthConfig) (func(http.Handler) http.Handler, error) {
	secret, err := cfg.GetJWTSecret()
	if err != nil {
		return nil, fmt.Errorf("failed to load JWT secret: %w", err)
	}

	if secret == "" {
		slog.Warn("auth: no JWT secret configured; administrative endpoints are unauthenticated")
		return anonymousMiddleware, nil
	}

	validator, err := NewHS256Validator(secret)
	if err != nil {
		return nil, err
	}

	publicPaths := DefaultPublicPaths
	if cfg != nil && len(cfg.PublicPaths) > 0 {
		publicPaths = append(append([]string{}, DefaultPublicPaths...), cfg.PublicPaths...)
	}

	slog.Info("auth: admin bearer tokens required", "public_paths", publicPaths)
	return WrapWithPublicPaths(newAdminMiddleware(validator, "").Middleware, publicPaths), nil
}

// anonymousMiddleware passes requests through without authentication
func anonymousMiddleware(next http.Handler) http.Handler {
	return next
}
