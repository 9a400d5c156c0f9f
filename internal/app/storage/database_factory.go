package storage

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/internal/config"
	"github.com/hrops/recruiting-server/internal/db"
	"github.com/hrops/recruiting-server/internal/service"
	"github.com/hrops/recruiting-server/internal/service/factory"
	"github.com/hrops/recruiting-server/internal/sync/state"
	"github.com/hrops/recruiting-server/internal/sync/writer"
)

// DatabaseFactory creates database-backed storage components.
// All components created by this factory use PostgreSQL for persistence.
type DatabaseFactory struct {
	config         *config.Config
	pool           *pgxpool.Pool
	ownsPool       bool
	tracerProvider trace.TracerProvider
}

var _ Factory = (*DatabaseFactory)(nil)

// DatabaseFactoryOption is a functional option for configuring the DatabaseFactory
type DatabaseFactoryOption func(*DatabaseFactory)

// WithTracerProvider enables tracing for the API service and its LLM client.
// If not set, tracing is disabled.
func WithTracerProvider(tp trace.TracerProvider) DatabaseFactoryOption {
	return func(f *DatabaseFactory) {
		f.tracerProvider = tp
	}
}

// WithPool uses an existing pool instead of connecting from configuration.
// The factory does not close a pool it did not create.
func WithPool(pool *pgxpool.Pool) DatabaseFactoryOption {
	return func(f *DatabaseFactory) {
		f.pool = pool
	}
}

// NewDatabaseFactory creates a new database-backed storage factory.
// It establishes a connection pool to the configured PostgreSQL database.
func NewDatabaseFactory(ctx context.Context, cfg *config.Config, opts ...DatabaseFactoryOption) (*DatabaseFactory, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	f := &DatabaseFactory{
		config: cfg,
	}
	for _, opt := range opts {
		opt(f)
	}

	if f.pool != nil {
		return f, nil
	}

	if cfg.Database == nil {
		return nil, fmt.Errorf("database configuration is required")
	}

	slog.Info("Creating database-backed storage factory")

	pool, err := db.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, err
	}
	f.pool = pool
	f.ownsPool = true

	return f, nil
}

// CreateSyncRunService creates the database-backed sync-run ledger.
func (d *DatabaseFactory) CreateSyncRunService(_ context.Context) (state.SyncRunService, error) {
	slog.Debug("Creating database-backed sync run service")
	return state.NewDBSyncRunService(d.pool), nil
}

// CreateSyncWriter creates a database-backed sync writer for Ashby records.
func (d *DatabaseFactory) CreateSyncWriter(_ context.Context) (writer.SyncWriter, error) {
	slog.Debug("Creating database-backed sync writer")
	return writer.NewDBSyncWriter(d.pool)
}

// CreateService creates the database-backed API service with the configured LLM provider.
func (d *DatabaseFactory) CreateService(_ context.Context) (service.Service, error) {
	slog.Debug("Creating database-backed service")
	return factory.NewService(d.config, d.pool, d.tracerProvider)
}

// Pool returns the shared connection pool
func (d *DatabaseFactory) Pool() *pgxpool.Pool {
	return d.pool
}

// Cleanup closes the connection pool when this factory created it.
func (d *DatabaseFactory) Cleanup() {
	if d.pool != nil && d.ownsPool {
		slog.Info("Closing database connection pool")
		d.pool.Close()
	}
}
