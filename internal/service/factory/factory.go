// Package factory wires the Service implementation from configuration.
package factory

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/internal/config"
	"github.com/hrops/recruiting-server/internal/llm"
	"github.com/hrops/recruiting-server/internal/service"
	database "github.com/hrops/recruiting-server/internal/service/db"
)

// NewService creates the database-backed Service with the configured LLM
// provider. The pool must not be nil; tp may be nil to disable tracing.
func NewService(cfg *config.Config, pool *pgxpool.Pool, tp trace.TracerProvider) (service.Service, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if pool == nil {
		return nil, fmt.Errorf("database pool is required")
	}

	completer, err := llm.NewCompleter(cfg.LLM, llm.WithTracerProvider(tp))
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	opts := []database.Option{
		database.WithConnectionPool(pool),
		database.WithCompleter(completer),
	}
	if tp != nil {
		opts = append(opts, database.WithTracer(tp.Tracer(database.ServiceTracerName)))
	}

	return database.New(opts...)
}
