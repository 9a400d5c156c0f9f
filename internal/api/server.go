// Package api provides the REST API server for the recruiting backend.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	ashbyapi "github.com/hrops/recruiting-server/internal/api/ashby"
	"github.com/hrops/recruiting-server/internal/api/candidates"
	"github.com/hrops/recruiting-server/internal/api/common"
	"github.com/hrops/recruiting-server/internal/api/policies"
	"github.com/hrops/recruiting-server/internal/api/system"
	"github.com/hrops/recruiting-server/internal/service"
	"github.com/hrops/recruiting-server/internal/sync"
	"github.com/hrops/recruiting-server/internal/sync/state"
)

// ServerOption configures the API server
type ServerOption func(*serverConfig)

// serverConfig holds the server configuration
type serverConfig struct {
	middlewares    []func(http.Handler) http.Handler
	requestTimeout time.Duration
	syncManager    sync.Manager
	syncRuns       state.SyncRunService
	webhook        http.Handler
	metricsHandler http.Handler
}

// WithMiddlewares adds middleware to the server
func WithMiddlewares(mw ...func(http.Handler) http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.middlewares = append(cfg.middlewares, mw...)
	}
}

// WithRequestTimeout bounds short request handlers. Sync passes and AI
// completions are not subject to it.
func WithRequestTimeout(d time.Duration) ServerOption {
	return func(cfg *serverConfig) {
		cfg.requestTimeout = d
	}
}

// WithSyncManager enables the /ashby/sync endpoints
func WithSyncManager(manager sync.Manager) ServerOption {
	return func(cfg *serverConfig) {
		cfg.syncManager = manager
	}
}

// WithSyncRunService exposes the sync-run ledger at /ashby/sync/status
func WithSyncRunService(runs state.SyncRunService) ServerOption {
	return func(cfg *serverConfig) {
		cfg.syncRuns = runs
	}
}

// WithWebhookHandler serves Ashby webhook deliveries at /ashby/webhook
func WithWebhookHandler(h http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.webhook = h
	}
}

// WithMetricsHandler serves the Prometheus exposition at /metrics
func WithMetricsHandler(h http.Handler) ServerOption {
	return func(cfg *serverConfig) {
		cfg.metricsHandler = h
	}
}

// NewServer creates and configures the HTTP router with the given service and options
func NewServer(svc service.Service, opts ...ServerOption) *chi.Mux {
	cfg := &serverConfig{
		middlewares: []func(http.Handler) http.Handler{},
	}

	for _, opt := range opts {
		opt(cfg)
	}

	r := chi.NewRouter()

	for _, mw := range cfg.middlewares {
		r.Use(mw)
	}

	r.Group(func(r chi.Router) {
		r.Use(common.Timeout(cfg.requestTimeout))

		r.Mount("/", system.Router(svc))
		r.Mount("/candidates", candidates.Router(svc))
	})

	if cfg.metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.metricsHandler)
	}

	if cfg.syncManager != nil {
		r.Mount("/ashby", ashbyapi.Router(cfg.syncManager, cfg.syncRuns, cfg.webhook, cfg.requestTimeout))
	} else if cfg.webhook != nil {
		r.Method(http.MethodPost, "/ashby/webhook", cfg.webhook)
	}

	r.Mount("/api", policies.Router(svc, cfg.requestTimeout))

	return r
}

// LoggingMiddleware logs HTTP requests
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Debug("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}
