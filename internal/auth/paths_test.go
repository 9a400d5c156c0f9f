package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsPublicPath(t *testing.T) {
	t.Parallel()

	standardPublicPaths := []string{"/health", "/docs", "/ashby/webhook"}

	tests := []struct {
		name        string
		path        string
		publicPaths []string
		want        bool
	}{
		{"exact match", "/health", standardPublicPaths, true},
		{"subpath match", "/docs/api/v1", standardPublicPaths, true},
		{"no match", "/ashby/sync/full", standardPublicPaths, false},
		{"empty public paths", "/any", []string{}, false},
		{"nil public paths", "/health", nil, false},

		{"traversal to protected", "/health/../ashby/sync/full", standardPublicPaths, false},
		{"traversal multiple levels", "/docs/../../candidates", standardPublicPaths, false},
		{"traversal stays in public", "/docs/v1/../v2", standardPublicPaths, true},

		{"encoded path separators", "/ashby/webhook/..%2f..%2fcandidates", standardPublicPaths, false},
		{"webhook is not a prefix of its siblings", "/ashby/webhooks", standardPublicPaths, false},

		{"healthcheck not health", "/healthcheck", standardPublicPaths, false},
		{"health/check matches", "/health/check", standardPublicPaths, true},
		{"trailing slash", "/health/", standardPublicPaths, true},

		{"double slash", "//health", standardPublicPaths, true},
		{"dot reference", "/./docs/api", standardPublicPaths, true},

		{"root exact", "/", []string{"/"}, true},
		{"root makes all public", "/candidates", []string{"/"}, true},

		{"case sensitive", "/Health", standardPublicPaths, false},

		{"traversal with normalization", "//health/..//candidates", standardPublicPaths, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := IsPublicPath(tt.path, tt.publicPaths)
			assert.Equal(t, tt.want, got, "path=%q, publicPaths=%v", tt.path, tt.publicPaths)
		})
	}
}

func TestDefaultPublicPaths(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"/health", "/readiness", "/version", "/metrics", "/ashby/webhook"} {
		assert.True(t, IsPublicPath(p, DefaultPublicPaths), p)
	}
	for _, p := range []string{"/candidates", "/ashby/sync/full", "/ashby/sync/status", "/api/generate-policy"} {
		assert.False(t, IsPublicPath(p, DefaultPublicPaths), p)
	}
}
