package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/internal/api"
	"github.com/hrops/recruiting-server/internal/app/storage"
	"github.com/hrops/recruiting-server/internal/ashby"
	"github.com/hrops/recruiting-server/internal/auth"
	"github.com/hrops/recruiting-server/internal/config"
	"github.com/hrops/recruiting-server/internal/service"
	pkgsync "github.com/hrops/recruiting-server/internal/sync"
	"github.com/hrops/recruiting-server/internal/sync/coordinator"
	"github.com/hrops/recruiting-server/internal/telemetry"
	"github.com/hrops/recruiting-server/internal/webhook"
)

const (
	defaultHTTPAddress    = ":8080"
	defaultRequestTimeout = 10 * time.Second
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 15 * time.Second
	defaultIdleTimeout    = 60 * time.Second
)

// RecruitingAppOptions is a function that configures the recruiting app builder
type RecruitingAppOptions func(*recruitingAppConfig) error

// recruitingAppConfig collects everything needed to build a RecruitingApp.
// It supports dependency injection for testing while providing sensible defaults for production
type recruitingAppConfig struct {
	config *config.Config

	// Optional component overrides (primarily for testing)
	storageFactory storage.Factory
	source         ashby.Source
	syncManager    pkgsync.Manager
	service        service.Service

	// HTTP server options
	address        string
	middlewares    []func(http.Handler) http.Handler
	requestTimeout time.Duration
	readTimeout    time.Duration
	writeTimeout   time.Duration
	idleTimeout    time.Duration

	// Auth components
	authMiddleware func(http.Handler) http.Handler

	// Telemetry components
	meterProvider  metric.MeterProvider
	tracerProvider trace.TracerProvider
	metricsHandler http.Handler
}

func baseConfig(opts ...RecruitingAppOptions) (*recruitingAppConfig, error) {
	cfg := &recruitingAppConfig{
		address:        defaultHTTPAddress,
		requestTimeout: defaultRequestTimeout,
		readTimeout:    defaultReadTimeout,
		writeTimeout:   defaultWriteTimeout,
		idleTimeout:    defaultIdleTimeout,
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// NewRecruitingApp creates a new RecruitingApp from the given options
func NewRecruitingApp(
	ctx context.Context,
	opts ...RecruitingAppOptions,
) (*RecruitingApp, error) {
	cfg, err := baseConfig(opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build base configuration: %w", err)
	}

	if cfg.config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}

	// One pool backs the writer, the ledger and the API service
	if cfg.storageFactory == nil {
		cfg.storageFactory, err = storage.NewDatabaseFactory(ctx, cfg.config,
			storage.WithTracerProvider(cfg.tracerProvider))
		if err != nil {
			return nil, fmt.Errorf("failed to create storage factory: %w", err)
		}
	}

	// Ensure cleanup happens on error
	var cleanupNeeded = true
	defer func() {
		if cleanupNeeded && cfg.storageFactory != nil {
			cfg.storageFactory.Cleanup()
		}
	}()

	svc, err := buildServiceComponents(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build service components: %w", err)
	}

	components, err := buildSyncComponents(ctx, cfg, svc)
	if err != nil {
		return nil, fmt.Errorf("failed to build sync components: %w", err)
	}
	components.Service = svc

	components.WebhookHandler, err = buildWebhookHandler(cfg, components.SyncManager)
	if err != nil {
		return nil, fmt.Errorf("failed to build webhook handler: %w", err)
	}

	// Build auth middleware (if not injected)
	if cfg.authMiddleware == nil {
		cfg.authMiddleware, err = auth.NewAuthMiddleware(cfg.config.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to build auth middleware: %w", err)
		}
	}

	httpServer, err := buildHTTPServer(cfg, components)
	if err != nil {
		return nil, fmt.Errorf("failed to build HTTP server: %w", err)
	}

	appCtx, cancel := context.WithCancel(ctx)

	// Cleanup is now handled by the app, not in defer
	cleanupNeeded = false

	storageFactory := cfg.storageFactory
	cancelFunc := func() {
		storageFactory.Cleanup()
		cancel()
	}

	return &RecruitingApp{
		config:     cfg.config,
		components: components,
		httpServer: httpServer,
		ctx:        appCtx,
		cancelFunc: cancelFunc,
	}, nil
}

// WithConfig sets the configuration
func WithConfig(c *config.Config) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.config = c
		return nil
	}
}

// WithAddress sets the HTTP server address
func WithAddress(addr string) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		if addr == "" {
			return fmt.Errorf("address cannot be empty")
		}

		host, port, found := strings.Cut(addr, ":")
		if !found || port == "" {
			return fmt.Errorf("address is not a valid port: %s", addr)
		}
		if host == "localhost" {
			host = "127.0.0.1"
		}
		if host == "" {
			host = "0.0.0.0"
		}

		if _, err := netip.ParseAddrPort(host + ":" + port); err != nil {
			return fmt.Errorf("address is not a valid port: %w", err)
		}

		cfg.address = addr
		return nil
	}
}

// WithMiddlewares sets custom HTTP middlewares
func WithMiddlewares(mw ...func(http.Handler) http.Handler) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.middlewares = mw
		return nil
	}
}

// WithRequestTimeout bounds short API requests
func WithRequestTimeout(d time.Duration) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		if d <= 0 {
			return fmt.Errorf("request timeout must be positive")
		}
		cfg.requestTimeout = d
		return nil
	}
}

// WithStorageFactory allows injecting a custom storage factory (for testing)
func WithStorageFactory(f storage.Factory) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.storageFactory = f
		return nil
	}
}

// WithSource allows injecting a custom Ashby source (for testing)
func WithSource(s ashby.Source) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.source = s
		return nil
	}
}

// WithSyncManager allows injecting a custom sync manager (for testing)
func WithSyncManager(sm pkgsync.Manager) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.syncManager = sm
		return nil
	}
}

// WithService allows injecting a custom API service (for testing)
func WithService(svc service.Service) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.service = svc
		return nil
	}
}

// WithAuthMiddleware replaces the configured admin auth middleware
func WithAuthMiddleware(mw func(http.Handler) http.Handler) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.authMiddleware = mw
		return nil
	}
}

// WithMeterProvider sets the OpenTelemetry meter provider for HTTP, sync and webhook metrics
func WithMeterProvider(mp metric.MeterProvider) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.meterProvider = mp
		return nil
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider for request and sync spans
func WithTracerProvider(tp trace.TracerProvider) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.tracerProvider = tp
		return nil
	}
}

// WithMetricsHandler serves the given handler at /metrics
func WithMetricsHandler(h http.Handler) RecruitingAppOptions {
	return func(cfg *recruitingAppConfig) error {
		cfg.metricsHandler = h
		return nil
	}
}

// buildServiceComponents builds the API service
func buildServiceComponents(ctx context.Context, b *recruitingAppConfig) (service.Service, error) {
	if b.service != nil {
		return b.service, nil
	}

	slog.Info("Initializing service components")

	svc, err := b.storageFactory.CreateService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create service: %w", err)
	}

	slog.Info("Service components initialized successfully")
	return svc, nil
}

// buildSyncComponents builds the sync manager, the ledger and the coordinator
func buildSyncComponents(
	ctx context.Context,
	b *recruitingAppConfig,
	svc service.Service,
) (*AppComponents, error) {
	slog.Info("Initializing sync components")

	runs, err := b.storageFactory.CreateSyncRunService(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create sync run service: %w", err)
	}

	var syncMetrics *telemetry.SyncMetrics
	if b.meterProvider != nil {
		syncMetrics, err = telemetry.NewSyncMetrics(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create sync metrics: %w", err)
		}
		slog.Info("Sync metrics enabled")
	}

	if b.syncManager == nil {
		if b.source == nil {
			b.source, err = ashby.NewClient(b.config.Ashby, ashby.WithTracerProvider(b.tracerProvider))
			if err != nil {
				return nil, fmt.Errorf("failed to create Ashby client: %w", err)
			}
		}

		syncWriter, err := b.storageFactory.CreateSyncWriter(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create sync writer: %w", err)
		}

		b.syncManager = pkgsync.NewDefaultSyncManager(b.source, syncWriter,
			pkgsync.WithSyncRunService(runs),
			pkgsync.WithSyncMetrics(syncMetrics),
			pkgsync.WithTracerProvider(b.tracerProvider),
		)
	}

	syncCoordinator := coordinator.New(b.syncManager, b.config.Sync,
		coordinator.WithSyncMetrics(syncMetrics),
		coordinator.WithCandidateCounter(svc.CountCandidates),
	)
	slog.Info("Sync components initialized successfully")

	return &AppComponents{
		SyncCoordinator: syncCoordinator,
		SyncManager:     b.syncManager,
		SyncRuns:        runs,
	}, nil
}

// buildWebhookHandler builds the HMAC-verified webhook ingress
func buildWebhookHandler(b *recruitingAppConfig, dispatcher webhook.Dispatcher) (http.Handler, error) {
	var secret string
	if b.config.Ashby != nil {
		var err error
		secret, err = b.config.Ashby.GetWebhookSecret()
		if err != nil {
			return nil, fmt.Errorf("failed to load webhook secret: %w", err)
		}
	}

	var handlerOpts []webhook.HandlerOption
	if b.meterProvider != nil {
		metrics, err := telemetry.NewWebhookMetrics(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create webhook metrics: %w", err)
		}
		handlerOpts = append(handlerOpts, webhook.WithMetrics(metrics))
	}

	return webhook.NewHandler(webhook.NewVerifier(secret), dispatcher, handlerOpts...), nil
}

// buildHTTPServer builds the HTTP server with router and middleware
func buildHTTPServer(
	b *recruitingAppConfig,
	components *AppComponents,
) (*http.Server, error) {
	slog.Info("Initializing HTTP server")

	// Use default middlewares if not provided. The request timeout is
	// applied per route group by the router.
	if b.middlewares == nil {
		b.middlewares = []func(http.Handler) http.Handler{
			middleware.RequestID,
			middleware.RealIP,
			middleware.Recoverer,
			api.LoggingMiddleware,
		}
	}

	// Tracing runs outside the request id and logging middlewares so log
	// records carry the span
	if b.tracerProvider != nil {
		b.middlewares = append([]func(http.Handler) http.Handler{
			telemetry.TracingMiddleware(b.tracerProvider),
		}, b.middlewares...)
		slog.Info("HTTP tracing middleware enabled")
	}

	// Add metrics middleware if meter provider is configured
	// This should be added early in the chain to capture all requests
	if b.meterProvider != nil {
		metricsMiddleware, err := telemetry.MetricsMiddleware(b.meterProvider)
		if err != nil {
			return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
		}
		// Prepend metrics middleware to capture all requests including those rejected by auth
		b.middlewares = append([]func(http.Handler) http.Handler{metricsMiddleware}, b.middlewares...)
		slog.Info("HTTP metrics middleware enabled")
	}

	if b.authMiddleware != nil {
		b.middlewares = append(b.middlewares, b.authMiddleware)
	}

	serverOpts := []api.ServerOption{
		api.WithMiddlewares(b.middlewares...),
		api.WithRequestTimeout(b.requestTimeout),
		api.WithSyncManager(components.SyncManager),
		api.WithSyncRunService(components.SyncRuns),
		api.WithWebhookHandler(components.WebhookHandler),
	}
	if b.metricsHandler != nil {
		serverOpts = append(serverOpts, api.WithMetricsHandler(b.metricsHandler))
	}

	router := api.NewServer(components.Service, serverOpts...)

	server := &http.Server{
		Addr:         b.address,
		Handler:      router,
		ReadTimeout:  b.readTimeout,
		WriteTimeout: b.writeTimeout,
		IdleTimeout:  b.idleTimeout,
	}

	slog.Info("HTTP server configured", "address", b.address)
	return server, nil
}
