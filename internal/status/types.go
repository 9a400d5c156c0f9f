// Package status holds the sync-run ledger types shared by the sync engine,
// the API and the CLI.
package status

import (
	"time"

	"github.com/google/uuid"
)

// SyncPhase represents the current phase of a synchronization run
type SyncPhase string

const (
	// SyncPhaseSyncing means sync is currently in progress
	SyncPhaseSyncing SyncPhase = "Syncing"

	// SyncPhaseComplete means sync completed successfully
	SyncPhaseComplete SyncPhase = "Complete"

	// SyncPhaseFailed means sync failed
	SyncPhaseFailed SyncPhase = "Failed"
)

// SyncRun is one entry of the sync-run ledger
type SyncRun struct {
	ID uuid.UUID `json:"id"`

	// Kind is the pass type: full, candidates or webhook
	Kind string `json:"kind"`

	// Phase represents the current synchronization phase
	Phase SyncPhase `json:"phase"`

	StartedAt time.Time  `json:"startedAt"`
	EndedAt   *time.Time `json:"endedAt,omitempty"`

	// Scanned is the number of application summaries listed
	Scanned int `json:"scanned"`

	// Reconciled is the number of applications written locally
	Reconciled int `json:"reconciled"`

	// Failed is the number of applications whose reconciliation failed
	Failed int `json:"failed"`

	// Message provides additional information about the run
	Message string `json:"message,omitempty"`
}

// Duration returns how long the run took, or zero while it is in progress
func (r *SyncRun) Duration() time.Duration {
	if r == nil || r.EndedAt == nil {
		return 0
	}
	return r.EndedAt.Sub(r.StartedAt)
}

// Outcome is the final tally written when a run ends
type Outcome struct {
	Phase      SyncPhase
	Scanned    int
	Reconciled int
	Failed     int
	Message    string
}
