// Package candidates provides read endpoints over the mirrored candidate data.
package candidates

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hrops/recruiting-server/internal/api/common"
	"github.com/hrops/recruiting-server/internal/service"
)

// Routes handles HTTP requests for candidate endpoints
type Routes struct {
	service service.Service
}

// NewRoutes creates a new Routes instance with the given service
func NewRoutes(svc service.Service) *Routes {
	return &Routes{
		service: svc,
	}
}

// Router creates the candidate router, mounted at /candidates
func Router(svc service.Service) http.Handler {
	routes := NewRoutes(svc)

	r := chi.NewRouter()
	r.Get("/", routes.listCandidates)
	r.Get("/{id}", routes.getCandidate)

	return r
}

// listCandidates handles GET /candidates
func (routes *Routes) listCandidates(w http.ResponseWriter, r *http.Request) {
	list, err := routes.service.ListCandidates(r.Context())
	if err != nil {
		slog.Error("Failed to list candidates", "error", err)
		common.WriteErrorResponse(w, "Failed to list candidates", http.StatusInternalServerError)
		return
	}
	if list == nil {
		list = []service.CandidateSummary{}
	}

	common.WriteJSONResponse(w, list, http.StatusOK)
}

// getCandidate handles GET /candidates/{id}
func (routes *Routes) getCandidate(w http.ResponseWriter, r *http.Request) {
	id, err := common.PathID(r, "id")
	if err != nil {
		common.WriteErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	candidate, err := routes.service.GetCandidate(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCandidateNotFound) {
			common.WriteErrorResponse(w, "Candidate not found", http.StatusNotFound)
			return
		}
		slog.Error("Failed to get candidate", "candidate_id", id, "error", err)
		common.WriteErrorResponse(w, "Failed to get candidate", http.StatusInternalServerError)
		return
	}

	common.WriteJSONResponse(w, candidate, http.StatusOK)
}
