package database

import (
	"context"

	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/internal/otel"
)

// ServiceTracerName is the name used for the database service tracer
const ServiceTracerName = "github.com/hrops/recruiting-server/service/db"

var dbSystem = trace.WithAttributes(semconv.DBSystemPostgreSQL)

// startSpan starts a span tagged db.system=postgresql
func (s *dbService) startSpan(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	return otel.StartSpan(ctx, s.tracer, name, append([]trace.SpanStartOption{dbSystem}, opts...)...)
}

func recordError(span trace.Span, err error) {
	otel.RecordError(span, err)
}
