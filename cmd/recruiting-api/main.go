// Package main is the entry point for the recruiting API server.
package main

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/cmd/recruiting-api/app"
	"github.com/hrops/recruiting-server/internal/config"
)

func main() {
	// .env is a local development convenience
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	// stdout is reserved for command output such as version --format json
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()})
	slog.SetDefault(slog.New(traceHandler{handler}))

	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// logLevel reads RECRUITING_LOG_LEVEL, then LOG_LEVEL. Unknown values fall
// back to info.
func logLevel() slog.Level {
	v := viper.New()
	v.SetEnvPrefix(config.EnvPrefix)
	v.AutomaticEnv()

	raw := v.GetString("LOG_LEVEL")
	if raw == "" {
		raw = os.Getenv("LOG_LEVEL")
	}
	if raw == "" {
		return slog.LevelInfo
	}
	if strings.EqualFold(raw, "warning") {
		raw = "warn"
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		slog.Warn("Invalid LOG_LEVEL, using INFO", "value", raw)
		return slog.LevelInfo
	}
	return level
}

// traceHandler stamps trace_id and span_id on records logged under an active span
type traceHandler struct {
	slog.Handler
}

func (h traceHandler) Handle(ctx context.Context, r slog.Record) error {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		r.AddAttrs(
			slog.String("trace_id", sc.TraceID().String()),
			slog.String("span_id", sc.SpanID().String()),
		)
	}
	return h.Handler.Handle(ctx, r)
}

func (h traceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return traceHandler{h.Handler.WithAttrs(attrs)}
}

func (h traceHandler) WithGroup(name string) slog.Handler {
	return traceHandler{h.Handler.WithGroup(name)}
}
