package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrops/recruiting-server/internal/config"
)

func TestNewAuthMiddleware(t *testing.T) {
	t.Parallel()

	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	serve := func(mw func(http.Handler) http.Handler, path, token string) int {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		rr := httptest.NewRecorder()
		mw(ok).ServeHTTP(rr, req)
		return rr.Code
	}

	t.Run("secret enables admin auth", func(t *testing.T) {
		t.Parallel()

		mw, err := NewAuthMiddleware(&config.AuthConfig{
			JWTSecret:   testSecret,
			PublicPaths: []string{"/docs"},
		})
		require.NoError(t, err)

		admin := signToken(t, testSecret, jwt.MapClaims{"sub": "a", AdminClaim: true})
		user := signToken(t, testSecret, jwt.MapClaims{"sub": "u"})

		assert.Equal(t, http.StatusUnauthorized, serve(mw, "/candidates", ""))
		assert.Equal(t, http.StatusForbidden, serve(mw, "/candidates", user))
		assert.Equal(t, http.StatusOK, serve(mw, "/candidates", admin))
		assert.Equal(t, http.StatusOK, serve(mw, "/health", ""))
		assert.Equal(t, http.StatusOK, serve(mw, "/docs/index.html", ""))
	})

	t.Run("unreadable secret file", func(t *testing.T) {
		t.Parallel()

		_, err := NewAuthMiddleware(&config.AuthConfig{JWTSecretFile: "/nonexistent/jwt-secret"})
		require.Error(t, err)
	})
}
