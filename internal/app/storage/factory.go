// Package storage provides factory functions for creating storage-dependent components.
// It ensures the sync writer, the sync-run ledger and the API service share
// one connection pool and are released together.
package storage

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/hrops/recruiting-server/internal/service"
	"github.com/hrops/recruiting-server/internal/sync/state"
	"github.com/hrops/recruiting-server/internal/sync/writer"
)

//go:generate mockgen -destination=mocks/mock_factory.go -package=mocks -source=factory.go Factory

// Factory creates storage-dependent components as a family.
type Factory interface {
	// CreateSyncRunService creates the ledger that records every sync pass.
	CreateSyncRunService(ctx context.Context) (state.SyncRunService, error)

	// CreateSyncWriter creates the writer the reconciler stores Ashby records with.
	CreateSyncWriter(ctx context.Context) (writer.SyncWriter, error)

	// CreateService creates the service behind the HTTP API.
	CreateService(ctx context.Context) (service.Service, error)

	// Pool returns the shared connection pool
	Pool() *pgxpool.Pool

	// Cleanup releases any resources held by this factory.
	// Should be called when the application shuts down.
	Cleanup()
}
