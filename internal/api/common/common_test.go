package common

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteErrorResponse(rr, "Candidate not found", http.StatusNotFound)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "Candidate not found", body.Error)
}

func TestDecodeJSONBody(t *testing.T) {
	t.Parallel()

	type query struct {
		Question string `json:"question"`
	}

	tests := []struct {
		name       string
		body       string
		limit      int64
		wantOK     bool
		wantStatus int
	}{
		{name: "valid", body: `{"question":"How many PTO days?"}`, wantOK: true},
		{name: "malformed", body: `{"question":`, wantStatus: http.StatusBadRequest},
		{name: "too large", body: `{"question":"` + strings.Repeat("x", 64) + `"}`, limit: 16, wantStatus: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rr := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/query-policy", strings.NewReader(tt.body))

			var q query
			ok := DecodeJSONBody(rr, req, &q, tt.limit)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, "How many PTO days?", q.Question)
				return
			}
			assert.Equal(t, tt.wantStatus, rr.Code)
		})
	}
}
