package telemetry

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// SyncMetricsMeterName is the name used for the sync metrics meter
	SyncMetricsMeterName = "github.com/hrops/recruiting-server/sync"

	// WebhookMetricsMeterName is the name used for the webhook metrics meter
	WebhookMetricsMeterName = "github.com/hrops/recruiting-server/webhook"
)

// Sync kinds used as the "kind" attribute
const (
	SyncKindFull       = "full"
	SyncKindCandidates = "candidates"
	SyncKindWebhook    = "webhook"
)

// Record outcomes used as the "outcome" attribute
const (
	OutcomeReconciled = "reconciled"
	OutcomeSkipped    = "skipped"
	OutcomeFailed     = "failed"
)

// SyncMetrics holds the OpenTelemetry instruments for sync operation metrics
type SyncMetrics struct {
	syncDuration    metric.Float64Histogram
	records         metric.Int64Counter
	candidatesTotal metric.Int64Gauge
}

// NewSyncMetrics creates a new SyncMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewSyncMetrics(provider metric.MeterProvider) (*SyncMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(SyncMetricsMeterName)

	syncDuration, err := meter.Float64Histogram(
		"recruiting_sync_duration_seconds",
		metric.WithDescription("Duration of sync operations in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 900),
	)
	if err != nil {
		return nil, err
	}

	records, err := meter.Int64Counter(
		"recruiting_sync_records_total",
		metric.WithDescription("Records processed by sync operations, by outcome"),
		metric.WithUnit("{record}"),
	)
	if err != nil {
		return nil, err
	}

	candidatesTotal, err := meter.Int64Gauge(
		"recruiting_candidates_total",
		metric.WithDescription("Number of candidates stored locally"),
		metric.WithUnit("{candidate}"),
	)
	if err != nil {
		return nil, err
	}

	return &SyncMetrics{
		syncDuration:    syncDuration,
		records:         records,
		candidatesTotal: candidatesTotal,
	}, nil
}

// RecordSyncDuration records the duration of a sync operation of the given kind
func (m *SyncMetrics) RecordSyncDuration(ctx context.Context, kind string, duration time.Duration, success bool) {
	if m == nil || m.syncDuration == nil {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("kind", kind),
		attribute.Bool("success", success),
	}

	m.syncDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(attrs...))
}

// RecordRecords adds count records with the given outcome. Zero counts are ignored.
func (m *SyncMetrics) RecordRecords(ctx context.Context, kind, outcome string, count int) {
	if m == nil || m.records == nil || count <= 0 {
		return
	}

	attrs := []attribute.KeyValue{
		attribute.String("kind", kind),
		attribute.String("outcome", outcome),
	}

	m.records.Add(ctx, int64(count), metric.WithAttributes(attrs...))
}

// RecordCandidatesTotal records the current number of stored candidates
func (m *SyncMetrics) RecordCandidatesTotal(ctx context.Context, count int64) {
	if m == nil || m.candidatesTotal == nil {
		return
	}
	m.candidatesTotal.Record(ctx, count)
}

// WebhookMetrics holds the OpenTelemetry instruments for webhook ingress
type WebhookMetrics struct {
	events metric.Int64Counter
}

// NewWebhookMetrics creates a new WebhookMetrics instance with the given meter provider.
// If provider is nil, it returns nil (no-op metrics).
func NewWebhookMetrics(provider metric.MeterProvider) (*WebhookMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(WebhookMetricsMeterName)

	events, err := meter.Int64Counter(
		"recruiting_webhook_events_total",
		metric.WithDescription("Webhook deliveries received, by action and result"),
		metric.WithUnit("{event}"),
	)
	if err != nil {
		return nil, err
	}

	return &WebhookMetrics{events: events}, nil
}

// RecordEvent counts one webhook delivery
func (m *WebhookMetrics) RecordEvent(ctx context.Context, action, result string) {
	if m == nil || m.events == nil {
		return
	}

	if action == "" {
		action = "unknown"
	}

	attrs := []attribute.KeyValue{
		attribute.String("action", action),
		attribute.String("result", result),
	}

	m.events.Add(ctx, 1, metric.WithAttributes(attrs...))
}
