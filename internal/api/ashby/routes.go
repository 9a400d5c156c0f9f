// Package ashby provides the Ashby webhook and manual sync endpoints.
package ashby

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/hrops/recruiting-server/internal/api/common"
	"github.com/hrops/recruiting-server/internal/status"
	"github.com/hrops/recruiting-server/internal/sync"
	"github.com/hrops/recruiting-server/internal/sync/state"
)

// FullSyncResponse is returned by POST /ashby/sync/full
type FullSyncResponse struct {
	Message string `json:"message"`
}

// CandidateSyncResponse is returned by POST /ashby/sync/candidates
type CandidateSyncResponse struct {
	Synced int `json:"synced"`
}

// SyncStatusResponse is returned by GET /ashby/sync/status
type SyncStatusResponse struct {
	Runs []status.SyncRun `json:"runs"`
	// RelevantStages lists the interview stage titles that are mirrored locally
	RelevantStages []string `json:"relevant_stages"`
}

// Routes handles the Ashby endpoints
type Routes struct {
	manager sync.Manager
	runs    state.SyncRunService
}

// Router creates the router mounted at /ashby. webhook may be nil, in which
// case the ingress endpoint is not registered. runs may be nil, in which
// case the status endpoint answers 503. requestTimeout bounds the status
// endpoint only; sync passes run until they finish.
func Router(manager sync.Manager, runs state.SyncRunService, webhook http.Handler, requestTimeout time.Duration) http.Handler {
	routes := &Routes{
		manager: manager,
		runs:    runs,
	}

	r := chi.NewRouter()

	if webhook != nil {
		r.Method(http.MethodPost, "/webhook", webhook)
	}

	r.Route("/sync", func(r chi.Router) {
		r.With(common.WithoutWriteDeadline).Post("/full", routes.fullSync)
		r.With(common.WithoutWriteDeadline).Post("/candidates", routes.syncCandidates)
		r.With(common.Timeout(requestTimeout)).Get("/status", routes.syncStatus)
	})

	return r
}

// fullSync handles POST /ashby/sync/full
func (routes *Routes) fullSync(w http.ResponseWriter, r *http.Request) {
	// The pass keeps going if the caller disconnects
	ctx := context.WithoutCancel(r.Context())

	result, syncErr := routes.manager.FullSync(ctx)
	if syncErr != nil {
		slog.Error("Manual full sync failed", "reason", syncErr.Reason, "error", syncErr)
		common.WriteErrorResponse(w, syncErr.Message, http.StatusBadGateway)
		return
	}

	common.WriteJSONResponse(w, FullSyncResponse{Message: result.Message()}, http.StatusOK)
}

// syncCandidates handles POST /ashby/sync/candidates
func (routes *Routes) syncCandidates(w http.ResponseWriter, r *http.Request) {
	ctx := context.WithoutCancel(r.Context())

	synced, syncErr := routes.manager.SyncCandidates(ctx)
	if syncErr != nil {
		slog.Error("Manual candidate sync failed", "reason", syncErr.Reason, "error", syncErr)
		common.WriteErrorResponse(w, syncErr.Message, http.StatusBadGateway)
		return
	}

	common.WriteJSONResponse(w, CandidateSyncResponse{Synced: synced}, http.StatusOK)
}

// syncStatus handles GET /ashby/sync/status
func (routes *Routes) syncStatus(w http.ResponseWriter, r *http.Request) {
	if routes.runs == nil {
		common.WriteErrorResponse(w, "Sync history is not available", http.StatusServiceUnavailable)
		return
	}

	limit := state.DefaultListLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil || parsed <= 0 {
			common.WriteErrorResponse(w, "Invalid limit parameter: must be a positive integer", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	runs, err := routes.runs.ListRecent(r.Context(), limit)
	if err != nil {
		slog.Error("Failed to list sync runs", "error", err)
		common.WriteErrorResponse(w, "Failed to list sync runs", http.StatusInternalServerError)
		return
	}
	if runs == nil {
		runs = []status.SyncRun{}
	}

	common.WriteJSONResponse(w, SyncStatusResponse{Runs: runs, RelevantStages: sync.RelevantStages()}, http.StatusOK)
}
