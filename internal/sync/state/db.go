package state

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrops/recruiting-server/internal/db/sqlc"
	"github.com/hrops/recruiting-server/internal/status"
)

type dbSyncRunService struct {
	pool *pgxpool.Pool
}

// NewDBSyncRunService creates a new database-backed sync-run ledger
func NewDBSyncRunService(pool *pgxpool.Pool) SyncRunService {
	return &dbSyncRunService{
		pool: pool,
	}
}

func (d *dbSyncRunService) Begin(ctx context.Context, kind string) (uuid.UUID, error) {
	if kind == "" {
		return uuid.Nil, fmt.Errorf("sync kind is required")
	}

	id, err := sqlc.New(d.pool).InsertSyncRun(ctx, sqlc.InsertSyncRunParams{
		Kind:      kind,
		StartedAt: time.Now().UTC(),
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to record sync run start: %w", err)
	}
	return id, nil
}

func (d *dbSyncRunService) Complete(ctx context.Context, id uuid.UUID, outcome status.Outcome) error {
	endedAt := time.Now().UTC()

	var message *string
	if outcome.Message != "" {
		message = &outcome.Message
	}

	err := sqlc.New(d.pool).CompleteSyncRun(ctx, sqlc.CompleteSyncRunParams{
		Status:     syncPhaseToDBStatus(outcome.Phase),
		EndedAt:    &endedAt,
		Scanned:    clampInt32(outcome.Scanned),
		Reconciled: clampInt32(outcome.Reconciled),
		Failed:     clampInt32(outcome.Failed),
		Message:    message,
		ID:         id,
	})
	if err != nil {
		return fmt.Errorf("failed to record sync run completion: %w", err)
	}
	return nil
}

func (d *dbSyncRunService) ListRecent(ctx context.Context, limit int) ([]status.SyncRun, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}

	rows, err := sqlc.New(d.pool).ListRecentSyncRuns(ctx, clampInt32(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list sync runs: %w", err)
	}

	runs := make([]status.SyncRun, 0, len(rows))
	for _, row := range rows {
		runs = append(runs, dbSyncRunToStatus(row))
	}
	return runs, nil
}

func dbSyncRunToStatus(row sqlc.SyncRun) status.SyncRun {
	run := status.SyncRun{
		ID:         row.ID,
		Kind:       row.Kind,
		Phase:      dbSyncStatusToPhase(row.Status),
		StartedAt:  row.StartedAt,
		EndedAt:    row.EndedAt,
		Scanned:    int(row.Scanned),
		Reconciled: int(row.Reconciled),
		Failed:     int(row.Failed),
	}
	if row.Message != nil {
		run.Message = *row.Message
	}
	return run
}

func dbSyncStatusToPhase(dbStatus sqlc.SyncStatus) status.SyncPhase {
	switch dbStatus {
	case sqlc.SyncStatusINPROGRESS:
		return status.SyncPhaseSyncing
	case sqlc.SyncStatusCOMPLETED:
		return status.SyncPhaseComplete
	case sqlc.SyncStatusFAILED:
		return status.SyncPhaseFailed
	default:
		return status.SyncPhaseFailed
	}
}

func syncPhaseToDBStatus(phase status.SyncPhase) sqlc.SyncStatus {
	switch phase {
	case status.SyncPhaseSyncing:
		return sqlc.SyncStatusINPROGRESS
	case status.SyncPhaseComplete:
		return sqlc.SyncStatusCOMPLETED
	case status.SyncPhaseFailed:
		return sqlc.SyncStatusFAILED
	default:
		return sqlc.SyncStatusFAILED
	}
}

func clampInt32(n int) int32 {
	if n > math.MaxInt32 {
		return math.MaxInt32
	}
	if n < 0 {
		return 0
	}
	return int32(n)
}
