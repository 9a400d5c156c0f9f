package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

func TestPathID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		path    string
		want    string
		wantErr string
	}{
		{name: "uuid", path: "/candidates/5b1f2c9e-1d2a-4a7e-9c36-0f3b8a6f2d11", want: "5b1f2c9e-1d2a-4a7e-9c36-0f3b8a6f2d11"},
		{name: "encoded colon", path: "/candidates/ashby%3A42", want: "ashby:42"},
		{name: "double encoded percent", path: "/candidates/a%2525b", want: "a%b"},
		{name: "encoded space", path: "/candidates/%20", wantErr: "id cannot be empty"},
		{name: "embedded tab", path: "/candidates/a%09b", wantErr: "id cannot contain whitespace"},
		{name: "too long", path: "/candidates/" + strings.Repeat("a", MaxPathIDLength+1), wantErr: "id exceeds 128 characters"},
		{name: "at the limit", path: "/candidates/" + strings.Repeat("a", MaxPathIDLength), want: strings.Repeat("a", MaxPathIDLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var (
				got string
				err error
			)
			r := chi.NewRouter()
			r.Get("/candidates/{id}", func(_ http.ResponseWriter, req *http.Request) {
				got, err = PathID(req, "id")
			})
			r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, tt.path, nil))

			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
