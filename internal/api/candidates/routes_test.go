package candidates_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hrops/recruiting-server/internal/api/candidates"
	"github.com/hrops/recruiting-server/internal/service"
	"github.com/hrops/recruiting-server/internal/service/mocks"
)

func TestListCandidates(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		setupMock  func(*mocks.MockService)
		wantStatus int
		wantBody   string
	}{
		{
			name: "returns id name and email",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().ListCandidates(gomock.Any()).Return([]service.CandidateSummary{
					{ID: "C1", Name: "Jane Doe", Email: "j@x.com"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[{"id":"C1","name":"Jane Doe","email":"j@x.com"}]`,
		},
		{
			name: "empty store",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().ListCandidates(gomock.Any()).Return(nil, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `[]`,
		},
		{
			name: "store failure",
			setupMock: func(m *mocks.MockService) {
				m.EXPECT().ListCandidates(gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":"Failed to list candidates"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			mockSvc := mocks.NewMockService(ctrl)
			tt.setupMock(mockSvc)

			rr := httptest.NewRecorder()
			candidates.Router(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestGetCandidate(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		mockSvc := mocks.NewMockService(ctrl)
		mockSvc.EXPECT().GetCandidate(gomock.Any(), "C1").Return(&service.CandidateDetail{
			ID:   "C1",
			Name: "Jane Doe",
			Applications: []service.Application{
				{ID: "A1", CurrentStageName: "First Round"},
			},
			Feedback: []service.Feedback{
				{ID: "F1", ApplicationID: "A1", OverallRecommendation: "Strong Hire"},
			},
		}, nil)

		rr := httptest.NewRecorder()
		candidates.Router(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/C1", nil))
		require.Equal(t, http.StatusOK, rr.Code)

		var got service.CandidateDetail
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
		assert.Equal(t, "Jane Doe", got.Name)
		require.Len(t, got.Applications, 1)
		assert.Equal(t, "First Round", got.Applications[0].CurrentStageName)
		require.Len(t, got.Feedback, 1)
		assert.Equal(t, "Strong Hire", got.Feedback[0].OverallRecommendation)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		mockSvc := mocks.NewMockService(ctrl)
		mockSvc.EXPECT().GetCandidate(gomock.Any(), "missing").
			Return(nil, fmt.Errorf("%w: missing", service.ErrCandidateNotFound))

		rr := httptest.NewRecorder()
		candidates.Router(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"error":"Candidate not found"}`, rr.Body.String())
	})

	t.Run("invalid id", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		rr := httptest.NewRecorder()
		candidates.Router(mocks.NewMockService(ctrl)).
			ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/C%201", nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		mockSvc := mocks.NewMockService(ctrl)
		mockSvc.EXPECT().GetCandidate(gomock.Any(), "C1").Return(nil, errors.New("timeout"))

		rr := httptest.NewRecorder()
		candidates.Router(mockSvc).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/C1", nil))
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}
