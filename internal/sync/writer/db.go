package writer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrops/recruiting-server/internal/db/sqlc"
)

// dbSyncWriter is a SyncWriter implementation that persists data to a database
type dbSyncWriter struct {
	pool *pgxpool.Pool
}

// NewDBSyncWriter creates a new dbSyncWriter with the given connection pool.
// The caller is responsible for closing the pool when done.
func NewDBSyncWriter(pool *pgxpool.Pool) (SyncWriter, error) {
	if pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}
	return &dbSyncWriter{pool: pool}, nil
}

// UpsertApplication writes the candidate and then the application in one
// transaction. The application is never written without its candidate.
func (d *dbSyncWriter) UpsertApplication(
	ctx context.Context,
	candidate CandidateRecord,
	application ApplicationRecord,
) error {
	if candidate.ID == "" {
		return fmt.Errorf("candidate id is required")
	}
	if application.ID == "" {
		return fmt.Errorf("application id is required")
	}

	return d.inTx(ctx, func(querier *sqlc.Queries) error {
		if err := querier.UpsertCandidate(ctx, sqlc.UpsertCandidateParams{
			ID:        candidate.ID,
			Name:      candidate.Name,
			Email:     nullable(candidate.Email),
			Phone:     nullable(candidate.Phone),
			Status:    nullable(candidate.Status),
			ResumeURL: nullable(candidate.ResumeURL),
		}); err != nil {
			return fmt.Errorf("failed to upsert candidate %s: %w", candidate.ID, err)
		}

		if err := querier.UpsertApplication(ctx, sqlc.UpsertApplicationParams{
			ID:               application.ID,
			CandidateID:      candidate.ID,
			JobID:            nullable(application.JobID),
			Status:           nullable(application.Status),
			CurrentStageID:   nullable(application.CurrentStageID),
			CurrentStageName: nullable(application.CurrentStageName),
		}); err != nil {
			return fmt.Errorf("failed to upsert application %s: %w", application.ID, err)
		}
		return nil
	})
}

// UpsertFeedback writes every feedback record in one transaction
func (d *dbSyncWriter) UpsertFeedback(ctx context.Context, feedback []FeedbackRecord) error {
	if len(feedback) == 0 {
		return nil
	}

	return d.inTx(ctx, func(querier *sqlc.Queries) error {
		for _, f := range feedback {
			if f.ID == "" {
				return fmt.Errorf("feedback id is required")
			}
			if err := querier.UpsertFeedback(ctx, sqlc.UpsertFeedbackParams{
				ID:                    f.ID,
				CandidateID:           f.CandidateID,
				ApplicationID:         f.ApplicationID,
				InterviewerName:       nullable(f.InterviewerName),
				InterviewerEmail:      nullable(f.InterviewerEmail),
				FeedbackText:          nullable(f.FeedbackText),
				OverallRecommendation: nullable(f.OverallRecommendation),
				SubmittedAt:           f.SubmittedAt,
			}); err != nil {
				return fmt.Errorf("failed to upsert feedback %s: %w", f.ID, err)
			}
		}
		return nil
	})
}

// inTx acquires a pooled connection, runs fn inside a read-committed
// transaction and commits. Any error rolls the transaction back.
func (d *dbSyncWriter) inTx(ctx context.Context, fn func(*sqlc.Queries) error) error {
	tx, err := d.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.ReadCommitted,
		AccessMode: pgx.ReadWrite,
	})
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			slog.Warn("Failed to roll back sync transaction", "error", rollbackErr)
		}
	}()

	if err := fn(sqlc.New(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// nullable maps empty strings to SQL NULL
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
