package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	metricnoop "go.opentelemetry.io/otel/metric/noop"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

func floatPtr(f float64) *float64 {
	return &f
}

// newCollector starts an OTLP/HTTP endpoint that accepts every export
func newCollector(t *testing.T) string {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	t.Cleanup(server.Close)
	return strings.TrimPrefix(server.URL, "http://")
}

func TestNew_NoOp(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts []Option
	}{
		{name: "no config", opts: nil},
		{name: "disabled", opts: []Option{WithTelemetryConfig(&Config{Enabled: false})}},
		{
			name: "enabled without signals",
			opts: []Option{WithTelemetryConfig(&Config{
				Enabled: true,
				Tracing: &TracingConfig{Enabled: false},
				Metrics: &MetricsConfig{Enabled: false},
			})},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx := context.Background()

			tel, err := New(ctx, tt.opts...)
			require.NoError(t, err)

			assert.IsType(t, tracenoop.TracerProvider{}, tel.TracerProvider())
			assert.IsType(t, metricnoop.MeterProvider{}, tel.MeterProvider())
			assert.Nil(t, tel.MetricsHandler())
			assert.NotNil(t, tel.Tracer("sync"))
			assert.NotNil(t, tel.Meter("sync"))

			require.NoError(t, tel.Shutdown(ctx))
			require.NoError(t, tel.Shutdown(ctx), "shutdown is idempotent")
		})
	}
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Parallel()

	_, err := New(context.Background(), WithTelemetryConfig(&Config{
		Enabled: true,
		Tracing: &TracingConfig{Enabled: true, Sampling: floatPtr(1.5)},
	}))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid telemetry configuration")
}

func TestNew_OTLP(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tel, err := New(ctx, WithTelemetryConfig(&Config{
		Enabled:  true,
		Endpoint: newCollector(t),
		Insecure: true,
		Tracing:  &TracingConfig{Enabled: true, Sampling: floatPtr(1.0)},
		Metrics:  &MetricsConfig{Enabled: true},
	}))
	require.NoError(t, err)

	assert.IsType(t, &sdktrace.TracerProvider{}, tel.TracerProvider())
	assert.IsType(t, &sdkmetric.MeterProvider{}, tel.MeterProvider())
	assert.Nil(t, tel.MetricsHandler(), "otlp-only metrics have no scrape handler")

	require.NoError(t, tel.Shutdown(ctx))
}

func TestNew_PrometheusHandler(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tel, err := New(ctx, WithTelemetryConfig(&Config{
		Enabled: true,
		Metrics: &MetricsConfig{Enabled: true, Exporter: MetricsExporterPrometheus},
	}))
	require.NoError(t, err)
	t.Cleanup(func() { _ = tel.Shutdown(ctx) })

	require.NotNil(t, tel.MetricsHandler())

	metrics, err := NewSyncMetrics(tel.MeterProvider())
	require.NoError(t, err)
	metrics.RecordRecords(ctx, SyncKindFull, OutcomeReconciled, 4)

	rr := httptest.NewRecorder()
	tel.MetricsHandler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Code)

	body, err := io.ReadAll(rr.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "recruiting_sync_records_total")
}
