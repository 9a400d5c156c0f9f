// Package state contains the sync-run ledger which the server persists.
package state

import (
	"context"

	"github.com/google/uuid"

	"github.com/hrops/recruiting-server/internal/status"
)

// DefaultListLimit is the number of runs returned when no limit is given
const DefaultListLimit = 20

// SyncRunService records the start and end of every sync pass.
//
//go:generate mockgen -destination=mocks/mock_sync_run_service.go -package=mocks -source=service.go SyncRunService
type SyncRunService interface {
	// Begin records a new in-progress run of the given kind and returns its id
	Begin(ctx context.Context, kind string) (uuid.UUID, error)
	// Complete writes the final tally of a run
	Complete(ctx context.Context, id uuid.UUID, outcome status.Outcome) error
	// ListRecent returns the most recent runs, newest first
	ListRecent(ctx context.Context, limit int) ([]status.SyncRun, error)
}
