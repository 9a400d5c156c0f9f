// Package telemetry provides OpenTelemetry instrumentation for the recruiting server.
// It supports configurable tracing over OTLP and metrics over OTLP, Prometheus, or both.
package telemetry

import (
	"errors"
	"fmt"

	"github.com/hrops/recruiting-server/internal/versions"
)

// Defaults applied when the config leaves a field empty
const (
	DefaultServiceName = "recruiting-api"
	DefaultEndpoint    = "localhost:4318"
	DefaultSampling    = 0.05
)

// Metrics exporters
const (
	MetricsExporterOTLP       = "otlp"
	MetricsExporterPrometheus = "prometheus"
	MetricsExporterBoth       = "both"
)

// Config is the telemetry section of the server config. Both Enabled and
// the per-signal Enabled flag must be set for a signal to be exported.
type Config struct {
	Enabled bool `yaml:"enabled"`
	// ServiceName defaults to DefaultServiceName
	ServiceName string `yaml:"serviceName,omitempty"`
	// ServiceVersion defaults to the build version
	ServiceVersion string `yaml:"serviceVersion,omitempty"`
	// Endpoint is the OTLP/HTTP collector as host:port
	Endpoint string `yaml:"endpoint,omitempty"`
	// Insecure sends OTLP over plain HTTP; local collectors only
	Insecure bool           `yaml:"insecure,omitempty"`
	Tracing  *TracingConfig `yaml:"tracing,omitempty"`
	Metrics  *MetricsConfig `yaml:"metrics,omitempty"`
}

// TracingConfig configures span export
type TracingConfig struct {
	Enabled bool `yaml:"enabled"`
	// Sampling is the head sampling ratio in (0, 1]
	Sampling *float64 `yaml:"sampling,omitempty"`
}

// MetricsConfig configures metric export
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	// Exporter is otlp (default), prometheus or both
	Exporter string `yaml:"exporter,omitempty"`
}

// GetExporter returns the metrics exporter, defaulting to otlp
func (c *MetricsConfig) GetExporter() string {
	if c == nil || c.Exporter == "" {
		return MetricsExporterOTLP
	}
	return c.Exporter
}

// UsesOTLP reports whether metrics are pushed to the OTLP endpoint
func (c *MetricsConfig) UsesOTLP() bool {
	e := c.GetExporter()
	return e == MetricsExporterOTLP || e == MetricsExporterBoth
}

// UsesPrometheus reports whether metrics are exposed for scraping
func (c *MetricsConfig) UsesPrometheus() bool {
	e := c.GetExporter()
	return e == MetricsExporterPrometheus || e == MetricsExporterBoth
}

// GetServiceName returns the service name, using default if not specified
func (c *Config) GetServiceName() string {
	if c.ServiceName == "" {
		return DefaultServiceName
	}
	return c.ServiceName
}

// GetServiceVersion returns the service version, defaulting to the build version
func (c *Config) GetServiceVersion() string {
	if c.ServiceVersion == "" {
		return versions.Version
	}
	return c.ServiceVersion
}

// GetEndpoint returns the endpoint, using default if not specified
func (c *Config) GetEndpoint() string {
	if c.Endpoint == "" {
		return DefaultEndpoint
	}
	return c.Endpoint
}

// GetSampling returns the sampling ratio, or DefaultSampling when unset.
func (c *TracingConfig) GetSampling() float64 {
	if c.Sampling == nil {
		return DefaultSampling
	}
	return *c.Sampling
}

// Validate checks the sampling ratio and metrics exporter of an enabled config
func (c *Config) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}

	var errs []error
	if err := c.Tracing.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("tracing: %w", err))
	}
	if err := c.Metrics.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("metrics: %w", err))
	}
	return errors.Join(errs...)
}

// Validate rejects sampling ratios outside (0, 1]
func (c *TracingConfig) Validate() error {
	if c == nil || !c.Enabled || c.Sampling == nil {
		return nil
	}
	if s := *c.Sampling; s <= 0 || s > 1.0 {
		return fmt.Errorf("sampling must be greater than 0.0 and at most 1.0, got %f", s)
	}
	return nil
}

// Validate rejects unknown exporters
func (c *MetricsConfig) Validate() error {
	if c == nil || !c.Enabled {
		return nil
	}
	switch c.GetExporter() {
	case MetricsExporterOTLP, MetricsExporterPrometheus, MetricsExporterBoth:
		return nil
	}
	return fmt.Errorf("unsupported exporter %q", c.Exporter)
}
