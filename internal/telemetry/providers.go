package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// DefaultMetricsInterval is the push interval of the OTLP metric reader
const DefaultMetricsInterval = 60 * time.Second

// ProviderOption configures NewTracerProvider and NewMeterProvider
type ProviderOption func(*providerConfig)

type providerConfig struct {
	config     *Config
	registerer prometheus.Registerer
}

// WithProviderConfig supplies the telemetry section the providers are built from.
// Without it both constructors return no-op providers.
func WithProviderConfig(cfg *Config) ProviderOption {
	return func(pc *providerConfig) {
		pc.config = cfg
	}
}

// WithPrometheusRegisterer sets the registry the Prometheus exporter registers its collector with
func WithPrometheusRegisterer(reg prometheus.Registerer) ProviderOption {
	return func(pc *providerConfig) {
		pc.registerer = reg
	}
}

func newProviderConfig(opts []ProviderOption) *providerConfig {
	pc := &providerConfig{}
	for _, opt := range opts {
		opt(pc)
	}
	return pc
}

// tracingEnabled reports whether both the global switch and the tracing section are on
func (pc *providerConfig) tracingEnabled() bool {
	return pc.config != nil && pc.config.Enabled && pc.config.Tracing != nil && pc.config.Tracing.Enabled
}

func (pc *providerConfig) metricsEnabled() bool {
	return pc.config != nil && pc.config.Enabled && pc.config.Metrics != nil && pc.config.Metrics.Enabled
}

// resource describes this server instance. Traces and metrics share it so
// both signals join on service.name and service.version.
func (pc *providerConfig) resource(ctx context.Context) (*resource.Resource, error) {
	res, err := resource.New(ctx,
		resource.WithAttributes(
			semconv.ServiceName(pc.config.GetServiceName()),
			semconv.ServiceVersion(pc.config.GetServiceVersion()),
		),
		resource.WithHost(),
		resource.WithTelemetrySDK(),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create resource: %w", err)
	}
	return res, nil
}

// NewTracerProvider creates the OTLP/HTTP tracer provider, or a no-op provider
// when tracing is disabled. The SDK provider is installed globally together
// with the W3C trace context propagator. The caller owns its Shutdown.
func NewTracerProvider(ctx context.Context, opts ...ProviderOption) (trace.TracerProvider, error) {
	pc := newProviderConfig(opts)
	if !pc.tracingEnabled() {
		slog.Info("Tracing disabled, using no-op tracer provider")
		return tracenoop.NewTracerProvider(), nil
	}

	res, err := pc.resource(ctx)
	if err != nil {
		return nil, err
	}

	exporterOpts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(pc.config.GetEndpoint())}
	if pc.config.Insecure {
		exporterOpts = append(exporterOpts, otlptracehttp.WithInsecure())
	}
	exporter, err := otlptracehttp.New(ctx, exporterOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create OTLP trace exporter: %w", err)
	}

	sampling := pc.config.Tracing.GetSampling()
	tp := sdktrace.NewTracerProvider(
		sdktrace.WithResource(res),
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(sampling))),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	if pc.config.Insecure {
		slog.Warn("Tracing exports over unencrypted HTTP")
	}
	slog.Info("Tracing initialized",
		"endpoint", pc.config.GetEndpoint(),
		"sampling_ratio", sampling)

	return tp, nil
}

// NewMeterProvider creates the meter provider with an OTLP push reader, a
// Prometheus pull reader, or both, depending on the metrics exporter setting.
// It returns a no-op provider when metrics are disabled.
func NewMeterProvider(ctx context.Context, opts ...ProviderOption) (metric.MeterProvider, error) {
	pc := newProviderConfig(opts)
	if !pc.metricsEnabled() {
		slog.Info("Metrics disabled, using no-op meter provider")
		return metricnoop.NewMeterProvider(), nil
	}

	res, err := pc.resource(ctx)
	if err != nil {
		return nil, err
	}

	providerOpts := []sdkmetric.Option{sdkmetric.WithResource(res)}
	metrics := pc.config.Metrics

	if metrics.UsesOTLP() {
		exporterOpts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(pc.config.GetEndpoint())}
		if pc.config.Insecure {
			exporterOpts = append(exporterOpts, otlpmetrichttp.WithInsecure())
		}
		exporter, err := otlpmetrichttp.New(ctx, exporterOpts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metric exporter: %w", err)
		}
		providerOpts = append(providerOpts, sdkmetric.WithReader(
			sdkmetric.NewPeriodicReader(exporter, sdkmetric.WithInterval(DefaultMetricsInterval)),
		))
	}

	if metrics.UsesPrometheus() {
		registerer := pc.registerer
		if registerer == nil {
			registerer = prometheus.DefaultRegisterer
		}
		exporter, err := otelprom.New(otelprom.WithRegisterer(registerer))
		if err != nil {
			return nil, fmt.Errorf("failed to create Prometheus metrics exporter: %w", err)
		}
		providerOpts = append(providerOpts, sdkmetric.WithReader(exporter))
	}

	mp := sdkmetric.NewMeterProvider(providerOpts...)
	otel.SetMeterProvider(mp)

	slog.Info("Metrics initialized",
		"exporter", metrics.GetExporter(),
		"endpoint", pc.config.GetEndpoint())

	return mp, nil
}
