package app

import (
	"net/http"

	"github.com/hrops/recruiting-server/internal/service"
	"github.com/hrops/recruiting-server/internal/sync"
	"github.com/hrops/recruiting-server/internal/sync/coordinator"
	"github.com/hrops/recruiting-server/internal/sync/state"
)

// AppComponents groups all application components
//
//nolint:revive // This name is fine
type AppComponents struct {
	// SyncCoordinator runs the startup full sync and the scheduled candidate sync
	SyncCoordinator coordinator.Coordinator

	// SyncManager runs sync passes and applies webhook events
	SyncManager sync.Manager

	// SyncRuns is the sync-run ledger
	SyncRuns state.SyncRunService

	// Service provides the API business logic
	Service service.Service

	// WebhookHandler serves POST /ashby/webhook
	WebhookHandler http.Handler
}
