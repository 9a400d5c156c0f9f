package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hrops/recruiting-server/internal/auth/mocks"
)

const testSecret = "test-jwt-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestAdminMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		authHeader string
		setupMock  func(*mocks.MockTokenValidator)
		wantStatus int
		wantCalled bool
	}{
		{
			name:       "missing authorization header",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "basic auth is not a bearer token",
			authHeader: "Basic xyz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "empty bearer token",
			authHeader: "Bearer ",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid token",
			authHeader: "Bearer bad-token",
			setupMock: func(m *mocks.MockTokenValidator) {
				m.EXPECT().ValidateToken(gomock.Any(), "bad-token").Return(nil, errors.New("signature is invalid"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token without admin claim",
			authHeader: "Bearer user-token",
			setupMock: func(m *mocks.MockTokenValidator) {
				m.EXPECT().ValidateToken(gomock.Any(), "user-token").
					Return(jwt.MapClaims{"sub": "recruiter@example.com"}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin claim must be a boolean",
			authHeader: "Bearer string-admin",
			setupMock: func(m *mocks.MockTokenValidator) {
				m.EXPECT().ValidateToken(gomock.Any(), "string-admin").
					Return(jwt.MapClaims{"sub": "x", AdminClaim: "true"}, nil)
			},
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "admin token",
			authHeader: "bearer admin-token",
			setupMock: func(m *mocks.MockTokenValidator) {
				m.EXPECT().ValidateToken(gomock.Any(), "admin-token").
					Return(jwt.MapClaims{"sub": "admin@example.com", AdminClaim: true}, nil)
			},
			wantStatus: http.StatusOK,
			wantCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			validator := mocks.NewMockTokenValidator(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(validator)
			}

			called := false
			handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				claims, ok := ClaimsFromContext(r.Context())
				assert.True(t, ok)
				assert.True(t, IsAdmin(claims))
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/ashby/sync/full", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			newAdminMiddleware(validator, "").Middleware(handler).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantCalled, called)
			if tt.wantStatus != http.StatusOK {
				assert.Contains(t, rr.Header().Get("WWW-Authenticate"), `realm="recruiting-server"`)
				assert.Contains(t, rr.Body.String(), `"error"`)
			}
		})
	}
}

func TestHS256Validator(t *testing.T) {
	t.Parallel()

	_, err := NewHS256Validator("")
	require.Error(t, err)

	v, err := NewHS256Validator(testSecret)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("valid token", func(t *testing.T) {
		t.Parallel()

		claims, err := v.ValidateToken(ctx, signToken(t, testSecret, jwt.MapClaims{
			"sub":      "admin@example.com",
			AdminClaim: true,
			"exp":      time.Now().Add(time.Hour).Unix(),
		}))
		require.NoError(t, err)
		assert.True(t, IsAdmin(claims))
	})

	t.Run("wrong secret", func(t *testing.T) {
		t.Parallel()

		_, err := v.ValidateToken(ctx, signToken(t, "other-secret", jwt.MapClaims{AdminClaim: true}))
		require.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		t.Parallel()

		_, err := v.ValidateToken(ctx, signToken(t, testSecret, jwt.MapClaims{
			AdminClaim: true,
			"exp":      time.Now().Add(-time.Minute).Unix(),
		}))
		require.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("other algorithm", func(t *testing.T) {
		t.Parallel()

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.MapClaims{AdminClaim: true}).
			SignedString([]byte(testSecret))
		require.NoError(t, err)

		_, err = v.ValidateToken(ctx, token)
		require.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		t.Parallel()

		_, err := v.ValidateToken(ctx, "not.a.jwt")
		require.Error(t, err)
	})
}

func TestWrapWithPublicPaths(t *testing.T) {
	t.Parallel()

	deny := func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		})
	}
	ok := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	handler := WrapWithPublicPaths(deny, DefaultPublicPaths)(ok)

	for path, want := range map[string]int{
		"/health":          http.StatusOK,
		"/ashby/webhook":   http.StatusOK,
		"/candidates":      http.StatusUnauthorized,
		"/ashby/sync/full": http.StatusUnauthorized,
	} {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, want, rr.Code, path)
	}
}

func TestSanitizeHeaderValue(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "plain", sanitizeHeaderValue("plain"))
	assert.Equal(t, `ab\"c`, sanitizeHeaderValue("a\r\nb\"c"))
}
