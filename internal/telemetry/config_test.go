package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hrops/recruiting-server/internal/versions"
)

func TestConfig_Getters(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{}
		assert.Equal(t, DefaultServiceName, cfg.GetServiceName())
		assert.Equal(t, versions.Version, cfg.GetServiceVersion())
		assert.Equal(t, DefaultEndpoint, cfg.GetEndpoint())
		assert.False(t, cfg.Insecure)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Parallel()

		cfg := &Config{
			ServiceName:    "recruiting-api-staging",
			ServiceVersion: "1.4.0",
			Endpoint:       "otel-collector:4318",
			Insecure:       true,
		}
		assert.Equal(t, "recruiting-api-staging", cfg.GetServiceName())
		assert.Equal(t, "1.4.0", cfg.GetServiceVersion())
		assert.Equal(t, "otel-collector:4318", cfg.GetEndpoint())
		assert.True(t, cfg.Insecure)
	})
}

func TestTracingConfig_GetSampling(t *testing.T) {
	t.Parallel()

	assert.Equal(t, DefaultSampling, (&TracingConfig{}).GetSampling())
	assert.Equal(t, 0.25, (&TracingConfig{Sampling: floatPtr(0.25)}).GetSampling())
}

func TestMetricsConfig_Exporter(t *testing.T) {
	t.Parallel()

	tests := []struct {
		exporter       string
		wantExporter   string
		wantOTLP       bool
		wantPrometheus bool
	}{
		{exporter: "", wantExporter: MetricsExporterOTLP, wantOTLP: true},
		{exporter: MetricsExporterOTLP, wantExporter: MetricsExporterOTLP, wantOTLP: true},
		{exporter: MetricsExporterPrometheus, wantExporter: MetricsExporterPrometheus, wantPrometheus: true},
		{exporter: MetricsExporterBoth, wantExporter: MetricsExporterBoth, wantOTLP: true, wantPrometheus: true},
	}

	for _, tt := range tests {
		t.Run("exporter="+tt.exporter, func(t *testing.T) {
			t.Parallel()

			cfg := &MetricsConfig{Enabled: true, Exporter: tt.exporter}
			assert.Equal(t, tt.wantExporter, cfg.GetExporter())
			assert.Equal(t, tt.wantOTLP, cfg.UsesOTLP())
			assert.Equal(t, tt.wantPrometheus, cfg.UsesPrometheus())
		})
	}

	var nilCfg *MetricsConfig
	assert.Equal(t, MetricsExporterOTLP, nilCfg.GetExporter())
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		config  *Config
		wantErr string
	}{
		{name: "nil config", config: nil},
		{name: "disabled ignores invalid sections", config: &Config{
			Enabled: false,
			Tracing: &TracingConfig{Enabled: true, Sampling: floatPtr(7)},
		}},
		{name: "valid full config", config: &Config{
			Enabled: true,
			Tracing: &TracingConfig{Enabled: true, Sampling: floatPtr(1.0)},
			Metrics: &MetricsConfig{Enabled: true, Exporter: MetricsExporterBoth},
		}},
		{name: "disabled tracing ignores sampling", config: &Config{
			Enabled: true,
			Tracing: &TracingConfig{Enabled: false, Sampling: floatPtr(0)},
		}},
		{name: "zero sampling", config: &Config{
			Enabled: true,
			Tracing: &TracingConfig{Enabled: true, Sampling: floatPtr(0)},
		}, wantErr: "tracing: sampling must be greater than 0.0"},
		{name: "sampling above one", config: &Config{
			Enabled: true,
			Tracing: &TracingConfig{Enabled: true, Sampling: floatPtr(1.01)},
		}, wantErr: "tracing: sampling"},
		{name: "unknown exporter", config: &Config{
			Enabled: true,
			Metrics: &MetricsConfig{Enabled: true, Exporter: "statsd"},
		}, wantErr: `metrics: unsupported exporter "statsd"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.config.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
