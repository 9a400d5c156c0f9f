package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	recruitingapp "github.com/hrops/recruiting-server/internal/app"
	"github.com/hrops/recruiting-server/internal/config"
	"github.com/hrops/recruiting-server/internal/telemetry"
)

const (
	defaultGracefulTimeout = 30 * time.Second // Kubernetes-friendly shutdown time
	telemetryFlushTimeout  = 5 * time.Second
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the recruiting API server",
		Long: `Start the recruiting API server.

The server requires a configuration file (--config) that specifies:
- Database connection settings
- Ashby API credentials and webhook secret
- Sync schedule, LLM backend, admin auth and telemetry settings

Secrets may also be supplied through RECRUITING_* environment variables.`,
		RunE: runServe,
	}

	cmd.Flags().String("address", ":8080", "Address to listen on")
	cmd.Flags().String("config", "", "Path to configuration file (YAML format, required)")
	cmd.Flags().Duration("request-timeout", 10*time.Second, "Timeout for short API requests")
	if err := cmd.MarkFlagRequired("config"); err != nil {
		panic(err)
	}

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	address, err := cmd.Flags().GetString("address")
	if err != nil {
		return fmt.Errorf("failed to get address flag: %w", err)
	}
	requestTimeout, err := cmd.Flags().GetDuration("request-timeout")
	if err != nil {
		return fmt.Errorf("failed to get request-timeout flag: %w", err)
	}

	cfg, err := loadConfigFromFlag(cmd)
	if err != nil {
		return err
	}
	slog.Info("Loaded configuration", "address", address)

	tel, err := telemetry.New(ctx, telemetry.WithTelemetryConfig(cfg.Telemetry))
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := tel.Shutdown(flushCtx); err != nil {
			slog.Error("Failed to shutdown telemetry", "error", err)
		}
	}()

	opts := append([]recruitingapp.RecruitingAppOptions{
		recruitingapp.WithConfig(cfg),
		recruitingapp.WithAddress(address),
		recruitingapp.WithRequestTimeout(requestTimeout),
	}, telemetryOptions(cfg, tel)...)

	app, err := recruitingapp.NewRecruitingApp(ctx, opts...)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Start()
	}()

	select {
	case err := <-errCh:
		// Start only returns on its own when a component failed
		if stopErr := app.Stop(defaultGracefulTimeout); stopErr != nil {
			slog.Error("Failed to stop application", "error", stopErr)
		}
		return err
	case <-ctx.Done():
		slog.Info("Received shutdown signal")
	}

	if err := app.Stop(defaultGracefulTimeout); err != nil {
		return err
	}
	return <-errCh
}

// telemetryOptions wires providers into the app only when telemetry is enabled,
// so a disabled configuration installs no metrics or tracing middleware.
func telemetryOptions(cfg *config.Config, tel *telemetry.Telemetry) []recruitingapp.RecruitingAppOptions {
	if cfg.Telemetry == nil || !cfg.Telemetry.Enabled {
		return nil
	}

	var opts []recruitingapp.RecruitingAppOptions
	if cfg.Telemetry.Metrics != nil && cfg.Telemetry.Metrics.Enabled {
		opts = append(opts, recruitingapp.WithMeterProvider(tel.MeterProvider()))
		if h := tel.MetricsHandler(); h != nil {
			opts = append(opts, recruitingapp.WithMetricsHandler(h))
		}
	}
	if cfg.Telemetry.Tracing != nil && cfg.Telemetry.Tracing.Enabled {
		opts = append(opts, recruitingapp.WithTracerProvider(tel.TracerProvider()))
	}
	return opts
}
