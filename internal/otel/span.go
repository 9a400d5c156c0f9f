// Package otel holds span helpers and attribute keys shared across packages.
package otel

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// errorStatus is the description set on failed spans
const errorStatus = "operation failed"

// Attribute keys shared by the sync, webhook and AI code paths
const (
	AttrSyncKind      = attribute.Key("sync.kind")
	AttrAshbyEndpoint = attribute.Key("ashby.endpoint")
	AttrAshbyPage     = attribute.Key("ashby.page")
	AttrAttempt       = attribute.Key("ashby.attempt")
	AttrCandidateID   = attribute.Key("candidate.id")
	AttrApplicationID = attribute.Key("application.id")
	AttrWebhookAction = attribute.Key("webhook.action")
	AttrResultCount   = attribute.Key("result.count")
	AttrHasCursor     = attribute.Key("pagination.has_cursor")
	AttrLLMProvider   = attribute.Key("llm.provider")
	AttrLLMModel      = attribute.Key("llm.model")
)

// StartSpan starts a child span on tracer. With tracing disabled the tracer
// is nil and the span already carried by ctx (usually a no-op) is returned.
func StartSpan(ctx context.Context, tracer trace.Tracer, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	if tracer != nil {
		return tracer.Start(ctx, name, opts...)
	}
	return ctx, trace.SpanFromContext(ctx)
}

// RecordError attaches err to span as an exception event and marks the span
// failed. The status description stays fixed so upstream payloads and SQL
// never end up in it.
func RecordError(span trace.Span, err error) {
	if span == nil || err == nil {
		return
	}
	span.RecordError(err)
	span.SetStatus(codes.Error, errorStatus)
}
