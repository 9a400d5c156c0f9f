package telemetry

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Telemetry owns the tracer and meter providers for the process and the
// optional Prometheus scrape handler.
type Telemetry struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	metricsHandler http.Handler
}

// Option configures New
type Option func(*options)

type options struct {
	config *Config
}

// WithTelemetryConfig sets the telemetry section of the server config
func WithTelemetryConfig(cfg *Config) Option {
	return func(o *options) {
		o.config = cfg
	}
}

// shutdowner is implemented by the SDK providers; noop providers lack it
type shutdowner interface {
	Shutdown(context.Context) error
}

// New builds the providers described by the config. A nil or disabled
// config yields noop providers. Callers must call Shutdown on exit.
func New(ctx context.Context, opts ...Option) (*Telemetry, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	cfg := o.config
	if cfg == nil || !cfg.Enabled {
		slog.Debug("Telemetry disabled")
		return newNoOpTelemetry(ctx)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid telemetry configuration: %w", err)
	}

	slog.Info("Initializing telemetry",
		"service_name", cfg.GetServiceName(),
		"service_version", cfg.GetServiceVersion())

	tp, err := NewTracerProvider(ctx, WithProviderConfig(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to create tracer provider: %w", err)
	}

	tel := &Telemetry{tracerProvider: tp}
	meterOpts := []ProviderOption{WithProviderConfig(cfg)}
	if cfg.Metrics != nil && cfg.Metrics.Enabled && cfg.Metrics.UsesPrometheus() {
		// Own registry: /metrics exposes only recruiting instruments
		reg := prometheus.NewRegistry()
		meterOpts = append(meterOpts, WithPrometheusRegisterer(reg))
		tel.metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
	}

	tel.meterProvider, err = NewMeterProvider(ctx, meterOpts...)
	if err != nil {
		_ = shutdown(ctx, tp)
		return nil, fmt.Errorf("failed to create meter provider: %w", err)
	}

	slog.Info("Telemetry initialized")
	return tel, nil
}

func newNoOpTelemetry(ctx context.Context) (*Telemetry, error) {
	tp, err := NewTracerProvider(ctx)
	if err != nil {
		return nil, err
	}
	mp, err := NewMeterProvider(ctx)
	if err != nil {
		return nil, err
	}
	return &Telemetry{tracerProvider: tp, meterProvider: mp}, nil
}

// TracerProvider returns the tracer provider
func (t *Telemetry) TracerProvider() trace.TracerProvider {
	return t.tracerProvider
}

// MeterProvider returns the meter provider
func (t *Telemetry) MeterProvider() metric.MeterProvider {
	return t.meterProvider
}

// MetricsHandler returns the Prometheus scrape handler, or nil when the
// Prometheus exporter is off.
func (t *Telemetry) MetricsHandler() http.Handler {
	return t.metricsHandler
}

// Tracer returns a named tracer
func (t *Telemetry) Tracer(name string, opts ...trace.TracerOption) trace.Tracer {
	return t.tracerProvider.Tracer(name, opts...)
}

// Meter returns a named meter
func (t *Telemetry) Meter(name string, opts ...metric.MeterOption) metric.Meter {
	return t.meterProvider.Meter(name, opts...)
}

// Shutdown flushes and stops both providers. Calling it twice is harmless.
func (t *Telemetry) Shutdown(ctx context.Context) error {
	slog.Debug("Shutting down telemetry")

	err := errors.Join(
		wrapShutdown("tracer", shutdown(ctx, t.tracerProvider)),
		wrapShutdown("meter", shutdown(ctx, t.meterProvider)),
	)
	if err == nil {
		slog.Info("Telemetry shutdown complete")
	}
	return err
}

func shutdown(ctx context.Context, provider any) error {
	if s, ok := provider.(shutdowner); ok {
		return s.Shutdown(ctx)
	}
	return nil
}

func wrapShutdown(kind string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to shutdown %s provider: %w", kind, err)
}
