package sync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/internal/ashby"
	"github.com/hrops/recruiting-server/internal/otel"
	"github.com/hrops/recruiting-server/internal/status"
	"github.com/hrops/recruiting-server/internal/sync/state"
	"github.com/hrops/recruiting-server/internal/sync/writer"
	"github.com/hrops/recruiting-server/internal/telemetry"
	"github.com/hrops/recruiting-server/internal/webhook"
)

const (
	// ProgressInterval is how many applications are processed between progress log lines
	ProgressInterval = 25

	// FullSyncMessageFormat is the summary returned by a full sync
	FullSyncMessageFormat = "Full sync complete in %.2f seconds. Found and processed %d applications in relevant stages."

	tracerName = "github.com/hrops/recruiting-server/sync"
)

// Failure reasons carried by *Error
const (
	ReasonListFailed  = "ListFailed"
	ReasonInterrupted = "Interrupted"
)

// Result contains the result of a completed sync pass
type Result struct {
	Kind string
	// Scanned is the number of application summaries listed
	Scanned int
	// Reconciled is the number of relevant applications written locally
	Reconciled int
	// Irrelevant is the number of applications outside the stage allow-list
	Irrelevant int
	// Skipped is the number of applications without an id or candidate
	Skipped int
	// Failed is the number of applications whose fetch or reconcile failed
	Failed   int
	Duration time.Duration
}

// Message returns the human-readable summary of the pass
func (r *Result) Message() string {
	return fmt.Sprintf(FullSyncMessageFormat, r.Duration.Seconds(), r.Reconciled)
}

// Error represents a failure that aborted a whole sync pass
type Error struct {
	Err     error
	Message string
	Kind    string
	Reason  string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Manager manages synchronization of Ashby data into local storage
//
//go:generate mockgen -destination=mocks/mock_manager.go -package=mocks -source=manager.go Manager
type Manager interface {
	// FullSync lists every application, fetches its detail and reconciles
	// those in a relevant stage
	FullSync(ctx context.Context) (*Result, *Error)

	// SyncCandidates runs the same stage-filtered pass and returns only the
	// number of applications reconciled
	SyncCandidates(ctx context.Context) (int, *Error)

	// HandleEvent applies a verified webhook event
	HandleEvent(ctx context.Context, event webhook.Event) (webhook.Outcome, error)
}

var _ webhook.Dispatcher = Manager(nil)

// defaultSyncManager is the default implementation of Manager
type defaultSyncManager struct {
	source     ashby.Source
	reconciler *Reconciler
	runs       state.SyncRunService
	metrics    *telemetry.SyncMetrics
	tracer     trace.Tracer
}

// Option configures the sync manager
type Option func(*defaultSyncManager)

// WithSyncRunService records every pass in the sync-run ledger
func WithSyncRunService(runs state.SyncRunService) Option {
	return func(m *defaultSyncManager) {
		m.runs = runs
	}
}

// WithSyncMetrics sets the sync metrics for the manager
func WithSyncMetrics(metrics *telemetry.SyncMetrics) Option {
	return func(m *defaultSyncManager) {
		m.metrics = metrics
	}
}

// WithTracerProvider enables spans for passes and reconciles
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(m *defaultSyncManager) {
		if tp != nil {
			m.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewDefaultSyncManager creates a new defaultSyncManager
func NewDefaultSyncManager(source ashby.Source, w writer.SyncWriter, opts ...Option) Manager {
	m := &defaultSyncManager{
		source: source,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.reconciler = NewReconciler(source, w, m.tracer)
	return m
}

// FullSync performs a full stage-filtered sync
func (m *defaultSyncManager) FullSync(ctx context.Context) (*Result, *Error) {
	slog.Info("Starting full sync of Ashby applications")
	result, syncErr := m.runPass(ctx, telemetry.SyncKindFull)
	if syncErr != nil {
		return nil, syncErr
	}
	slog.Info(result.Message())
	return result, nil
}

// SyncCandidates performs a stage-filtered sync and returns the reconciled count
func (m *defaultSyncManager) SyncCandidates(ctx context.Context) (int, *Error) {
	result, syncErr := m.runPass(ctx, telemetry.SyncKindCandidates)
	if syncErr != nil {
		return 0, syncErr
	}
	slog.Info("Candidate sync completed",
		"synced", result.Reconciled,
		"duration", result.Duration)
	return result.Reconciled, nil
}

// recordOutcome is what happened to one application during a pass
type recordOutcome int

const (
	recordReconciled recordOutcome = iota
	recordIrrelevant
	recordSkipped
	recordFailed
)

// runPass lists every application and reconciles the relevant ones. Only a
// listing failure or a cancelled context aborts the pass.
func (m *defaultSyncManager) runPass(ctx context.Context, kind string) (*Result, *Error) {
	start := time.Now()
	runID := m.beginRun(ctx, kind)

	ctx, span := otel.StartSpan(ctx, m.tracer, "sync.Pass",
		trace.WithAttributes(otel.AttrSyncKind.String(kind)),
	)
	defer span.End()

	summaries, err := m.source.ListApplications(ctx)
	if err != nil {
		otel.RecordError(span, err)
		syncErr := &Error{
			Err:     err,
			Message: fmt.Sprintf("Failed to list applications: %v", err),
			Kind:    kind,
			Reason:  ReasonListFailed,
		}
		slog.Error("Sync pass aborted", "kind", kind, "error", err)
		m.finishRun(ctx, runID, &Result{Kind: kind, Duration: time.Since(start)}, syncErr)
		return nil, syncErr
	}

	total := len(summaries)
	slog.Info("Processing applications to find relevant candidates",
		"kind", kind,
		"applications", total)

	result := &Result{Kind: kind, Scanned: total}
	for i, summary := range summaries {
		if ctxErr := ctx.Err(); ctxErr != nil {
			result.Duration = time.Since(start)
			syncErr := &Error{
				Err:     ctxErr,
				Message: fmt.Sprintf("Sync interrupted after %d of %d applications", i, total),
				Kind:    kind,
				Reason:  ReasonInterrupted,
			}
			otel.RecordError(span, ctxErr)
			m.finishRun(ctx, runID, result, syncErr)
			return nil, syncErr
		}

		switch m.processApplication(ctx, summary.ID) {
		case recordReconciled:
			result.Reconciled++
		case recordIrrelevant:
			result.Irrelevant++
		case recordSkipped:
			result.Skipped++
		case recordFailed:
			result.Failed++
		}

		if (i+1)%ProgressInterval == 0 {
			slog.Info("Sync progress",
				"kind", kind,
				"processed", i+1,
				"total", total,
				"reconciled", result.Reconciled,
				"failed", result.Failed)
		}
	}

	result.Duration = time.Since(start)
	span.SetAttributes(otel.AttrResultCount.Int(result.Reconciled))
	m.finishRun(ctx, runID, result, nil)
	return result, nil
}

// processApplication fetches one application and reconciles it when its
// stage is relevant. Errors are logged here and never escape.
func (m *defaultSyncManager) processApplication(ctx context.Context, applicationID string) recordOutcome {
	app, err := m.source.GetApplication(ctx, applicationID)
	if err != nil {
		slog.Error("Failed to fetch application details",
			"application_id", applicationID,
			"error", err)
		return recordFailed
	}

	if !IsRelevantStage(app.StageTitle()) {
		return recordIrrelevant
	}

	if err := m.reconciler.ReconcileApplication(ctx, app); err != nil {
		if errors.Is(err, ErrSkipped) {
			return recordSkipped
		}
		slog.Error("Failed to reconcile application",
			"application_id", applicationID,
			"error", err)
		return recordFailed
	}
	return recordReconciled
}

// HandleEvent applies a verified webhook event. The returned error is only
// for logging; callers still acknowledge the event.
func (m *defaultSyncManager) HandleEvent(ctx context.Context, event webhook.Event) (webhook.Outcome, error) {
	ctx, span := otel.StartSpan(ctx, m.tracer, "sync.HandleEvent",
		trace.WithAttributes(otel.AttrWebhookAction.String(event.EventType)),
	)
	defer span.End()

	outcome, err := m.dispatchEvent(ctx, event)
	if err != nil {
		otel.RecordError(span, err)
	}

	switch outcome {
	case webhook.OutcomeReconciled:
		m.metrics.RecordRecords(ctx, telemetry.SyncKindWebhook, telemetry.OutcomeReconciled, 1)
	case webhook.OutcomeSkipped:
		m.metrics.RecordRecords(ctx, telemetry.SyncKindWebhook, telemetry.OutcomeSkipped, 1)
	case webhook.OutcomeFailed:
		m.metrics.RecordRecords(ctx, telemetry.SyncKindWebhook, telemetry.OutcomeFailed, 1)
	case webhook.OutcomePong, webhook.OutcomeIgnored:
	}
	return outcome, err
}

func (m *defaultSyncManager) dispatchEvent(ctx context.Context, event webhook.Event) (webhook.Outcome, error) {
	switch event.EventType {
	case webhook.EventPing:
		slog.Info("Received ping event from Ashby")
		return webhook.OutcomePong, nil

	case webhook.EventStageChange:
		var app ashby.Application
		if err := json.Unmarshal(event.Data, &app); err != nil {
			return webhook.OutcomeFailed, fmt.Errorf("invalid %s payload: %w", event.EventType, err)
		}

		if title := app.StageTitle(); !IsRelevantStage(title) {
			slog.Info("Ignoring stage change outside relevant stages",
				"application_id", app.ID,
				"stage", title)
			return webhook.OutcomeIgnored, nil
		}

		slog.Info("Application moved into a relevant stage", "application_id", app.ID)
		if err := m.reconciler.ReconcileApplication(ctx, &app); err != nil {
			if errors.Is(err, ErrSkipped) {
				return webhook.OutcomeSkipped, nil
			}
			return webhook.OutcomeFailed, err
		}
		return webhook.OutcomeReconciled, nil

	case webhook.EventFeedbackSubmit:
		var feedback ashby.Feedback
		if err := json.Unmarshal(event.Data, &feedback); err != nil {
			return webhook.OutcomeFailed, fmt.Errorf("invalid %s payload: %w", event.EventType, err)
		}

		if feedback.ApplicationID == "" || feedback.CandidateID == "" {
			slog.Warn("Skipping feedback event with missing application or candidate id",
				"feedback_id", feedback.ID)
			return webhook.OutcomeSkipped, nil
		}

		slog.Info("Processing new feedback", "application_id", feedback.ApplicationID)
		if _, err := m.reconciler.ReconcileFeedback(ctx, feedback.ApplicationID, feedback.CandidateID); err != nil {
			return webhook.OutcomeFailed, err
		}
		return webhook.OutcomeReconciled, nil

	default:
		slog.Info("Ignoring unhandled webhook event", "event_type", event.EventType)
		return webhook.OutcomeIgnored, nil
	}
}

// beginRun records the start of a pass. It returns uuid.Nil when the ledger
// is disabled or unavailable.
func (m *defaultSyncManager) beginRun(ctx context.Context, kind string) uuid.UUID {
	if m.runs == nil {
		return uuid.Nil
	}
	id, err := m.runs.Begin(ctx, kind)
	if err != nil {
		slog.Error("Error recording sync run start", "kind", kind, "error", err)
		return uuid.Nil
	}
	return id
}

// finishRun records the end of a pass in the ledger and the metrics
func (m *defaultSyncManager) finishRun(ctx context.Context, runID uuid.UUID, result *Result, syncErr *Error) {
	m.metrics.RecordSyncDuration(ctx, result.Kind, result.Duration, syncErr == nil)
	m.metrics.RecordRecords(ctx, result.Kind, telemetry.OutcomeReconciled, result.Reconciled)
	m.metrics.RecordRecords(ctx, result.Kind, telemetry.OutcomeSkipped, result.Skipped)
	m.metrics.RecordRecords(ctx, result.Kind, telemetry.OutcomeFailed, result.Failed)

	if runID == uuid.Nil {
		return
	}

	outcome := status.Outcome{
		Phase:      status.SyncPhaseComplete,
		Scanned:    result.Scanned,
		Reconciled: result.Reconciled,
		Failed:     result.Failed,
		Message:    result.Message(),
	}
	if syncErr != nil {
		outcome.Phase = status.SyncPhaseFailed
		outcome.Message = syncErr.Message
	}

	// The pass context may already be cancelled; the ledger entry still has to close.
	if err := m.runs.Complete(context.WithoutCancel(ctx), runID, outcome); err != nil {
		slog.Error("Error recording sync run completion",
			"kind", result.Kind,
			"run_id", runID,
			"error", err)
	}
}
