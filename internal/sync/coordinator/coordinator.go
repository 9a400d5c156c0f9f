package coordinator

import (
	"context"
	"errors"
	"log/slog"
	gosync "sync"
	"time"

	"github.com/hrops/recruiting-server/internal/config"
	pkgsync "github.com/hrops/recruiting-server/internal/sync"
	"github.com/hrops/recruiting-server/internal/telemetry"
)

// ErrAlreadyRunning is returned by Start while a previous Start is still running
var ErrAlreadyRunning = errors.New("sync coordinator already running")

// Coordinator manages background synchronization scheduling and execution
type Coordinator interface {
	// Start begins background sync coordination.
	// Blocks until context is cancelled or Stop is called. A stopped
	// coordinator may be started again.
	Start(ctx context.Context) error

	// Stop gracefully stops the coordinator
	Stop() error
}

// CandidateCounter returns the number of locally stored candidates
type CandidateCounter func(ctx context.Context) (int64, error)

// defaultCoordinator is the default implementation of Coordinator
type defaultCoordinator struct {
	manager           pkgsync.Manager
	interval          time.Duration
	fullSyncOnStartup bool

	// Lifecycle management
	mu         gosync.Mutex
	cancelFunc context.CancelFunc
	done       chan struct{}
	passes     gosync.WaitGroup

	// Metrics
	syncMetrics      *telemetry.SyncMetrics
	candidateCounter CandidateCounter
}

// Option is a function that configures the coordinator
type Option func(*defaultCoordinator)

// WithSyncMetrics sets the sync metrics for the coordinator
func WithSyncMetrics(metrics *telemetry.SyncMetrics) Option {
	return func(c *defaultCoordinator) {
		c.syncMetrics = metrics
	}
}

// WithCandidateCounter reports the stored candidate count after every pass
func WithCandidateCounter(counter CandidateCounter) Option {
	return func(c *defaultCoordinator) {
		c.candidateCounter = counter
	}
}

// New creates a new coordinator with injected dependencies
func New(manager pkgsync.Manager, cfg *config.SyncConfig, opts ...Option) Coordinator {
	c := &defaultCoordinator{
		manager:           manager,
		interval:          cfg.GetInterval(),
		fullSyncOnStartup: cfg.GetFullSyncOnStartup(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Start begins background sync coordination
func (c *defaultCoordinator) Start(ctx context.Context) error {
	coordCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})

	c.mu.Lock()
	if c.cancelFunc != nil {
		c.mu.Unlock()
		cancel()
		return ErrAlreadyRunning
	}
	c.cancelFunc = cancel
	c.done = done
	c.mu.Unlock()

	slog.Info("Starting background sync coordinator",
		"interval", c.interval,
		"full_sync_on_startup", c.fullSyncOnStartup)

	defer func() {
		cancel()
		c.passes.Wait()
		c.mu.Lock()
		c.cancelFunc = nil
		c.done = nil
		c.mu.Unlock()
		close(done)
		slog.Info("Background sync coordinator shutting down")
	}()

	if c.fullSyncOnStartup {
		c.passes.Add(1)
		go func() {
			defer c.passes.Done()
			c.performFullSync(coordCtx)
		}()
	}

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.performCandidateSync(coordCtx)
		case <-coordCtx.Done():
			slog.Info("Sync coordinator stopping")
			return nil
		}
	}
}

// Stop gracefully stops the coordinator. It is a no-op when not running.
func (c *defaultCoordinator) Stop() error {
	c.mu.Lock()
	cancel, done := c.cancelFunc, c.done
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}
	slog.Info("Stopping sync coordinator")
	cancel()
	<-done
	return nil
}

// performFullSync runs the startup full sync. Failures are only logged.
func (c *defaultCoordinator) performFullSync(ctx context.Context) {
	slog.Info("Running startup full sync")

	result, syncErr := c.manager.FullSync(ctx)
	if syncErr != nil {
		slog.Error("Startup full sync failed",
			"reason", syncErr.Reason,
			"error", syncErr.Message)
		return
	}

	slog.Info("Startup full sync finished",
		"scanned", result.Scanned,
		"reconciled", result.Reconciled,
		"failed", result.Failed,
		"duration", result.Duration)
	c.recordCandidatesTotal(ctx)
}

// performCandidateSync runs one scheduled candidate sync
func (c *defaultCoordinator) performCandidateSync(ctx context.Context) {
	slog.Info("Starting scheduled candidate sync")

	synced, syncErr := c.manager.SyncCandidates(ctx)
	if syncErr != nil {
		slog.Error("Scheduled candidate sync failed",
			"reason", syncErr.Reason,
			"error", syncErr.Message)
		return
	}

	slog.Info("Scheduled candidate sync finished", "synced", synced)
	c.recordCandidatesTotal(ctx)
}

func (c *defaultCoordinator) recordCandidatesTotal(ctx context.Context) {
	if c.candidateCounter == nil || c.syncMetrics == nil {
		return
	}

	count, err := c.candidateCounter(ctx)
	if err != nil {
		slog.Warn("Error counting candidates", "error", err)
		return
	}
	c.syncMetrics.RecordCandidatesTotal(ctx, count)
}
