// Package app provides application lifecycle management for the recruiting server.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hrops/recruiting-server/internal/config"
)

// RecruitingApp encapsulates all components needed to run the recruiting API server.
// It provides lifecycle management and graceful shutdown capabilities
type RecruitingApp struct {
	config     *config.Config
	components *AppComponents
	httpServer *http.Server

	// Lifecycle management
	ctx        context.Context
	cancelFunc context.CancelFunc
}

// Start runs the sync coordinator and the HTTP server side by side.
// It blocks until both have stopped and returns the first failure.
func (app *RecruitingApp) Start() error {
	g, gctx := errgroup.WithContext(app.ctx)

	g.Go(func() error {
		if err := app.components.SyncCoordinator.Start(gctx); err != nil {
			return fmt.Errorf("sync coordinator failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		slog.Info("Server listening", "address", app.httpServer.Addr)
		if err := app.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}

// Stop gracefully stops the application with the given timeout.
// It stops the sync coordinator and then shuts down the HTTP server
func (app *RecruitingApp) Stop(timeout time.Duration) error {
	slog.Info("Shutting down server")

	// Stop sync coordinator first
	if err := app.components.SyncCoordinator.Stop(); err != nil {
		slog.Error("Failed to stop sync coordinator", "error", err)
	}

	// Graceful HTTP server shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := app.httpServer.Shutdown(shutdownCtx)

	// Release storage only after in-flight requests are done
	if app.cancelFunc != nil {
		app.cancelFunc()
	}

	if err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("Server shutdown complete")
	return nil
}

// GetConfig returns the application configuration
func (app *RecruitingApp) GetConfig() *config.Config {
	return app.config
}

// GetHTTPServer returns the HTTP server (useful for testing to get the actual port)
func (app *RecruitingApp) GetHTTPServer() *http.Server {
	return app.httpServer
}

// Components returns the wired application components
func (app *RecruitingApp) Components() *AppComponents {
	return app.components
}
