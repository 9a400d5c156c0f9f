package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/internal/ashby"
	"github.com/hrops/recruiting-server/internal/otel"
	"github.com/hrops/recruiting-server/internal/sync/writer"
)

// ErrSkipped marks an application that cannot be reconciled because its
// payload lacks an id or a candidate
var ErrSkipped = errors.New("application skipped")

// Reconciler copies a single Ashby application, its candidate and its
// feedback into local storage
type Reconciler struct {
	source ashby.Source
	writer writer.SyncWriter
	tracer trace.Tracer
}

// NewReconciler creates a Reconciler
func NewReconciler(source ashby.Source, w writer.SyncWriter, tracer trace.Tracer) *Reconciler {
	return &Reconciler{
		source: source,
		writer: w,
		tracer: tracer,
	}
}

// ReconcileApplication upserts the candidate and application in one unit,
// then re-fetches and upserts every feedback item of the application in a
// second unit. A feedback failure does not undo the first unit.
func (r *Reconciler) ReconcileApplication(ctx context.Context, app *ashby.Application) error {
	if app == nil || app.ID == "" || app.Candidate == nil || app.Candidate.ID == "" {
		applicationID := ""
		if app != nil {
			applicationID = app.ID
		}
		slog.Warn("Skipping application with missing id or candidate data",
			"application_id", applicationID)
		return fmt.Errorf("%w: application %q has no id or candidate", ErrSkipped, applicationID)
	}

	ctx, span := otel.StartSpan(ctx, r.tracer, "sync.ReconcileApplication",
		trace.WithAttributes(
			otel.AttrApplicationID.String(app.ID),
			otel.AttrCandidateID.String(app.Candidate.ID),
		),
	)
	defer span.End()

	if err := r.writer.UpsertApplication(ctx, candidateRecord(app.Candidate), applicationRecord(app)); err != nil {
		otel.RecordError(span, err)
		return fmt.Errorf("failed to store application %s: %w", app.ID, err)
	}

	count, err := r.ReconcileFeedback(ctx, app.ID, app.Candidate.ID)
	if err != nil {
		otel.RecordError(span, err)
		return err
	}

	slog.Info("Reconciled application",
		"application_id", app.ID,
		"candidate_id", app.Candidate.ID,
		"candidate_name", app.Candidate.Name,
		"feedback_count", count)
	return nil
}

// ReconcileFeedback fetches every feedback submission of an application and
// upserts them linked to the candidate. It returns the number stored.
func (r *Reconciler) ReconcileFeedback(ctx context.Context, applicationID, candidateID string) (int, error) {
	if applicationID == "" || candidateID == "" {
		return 0, fmt.Errorf("%w: feedback requires application and candidate ids", ErrSkipped)
	}

	items, err := r.source.ListFeedback(ctx, applicationID)
	if err != nil {
		return 0, fmt.Errorf("failed to fetch feedback for application %s: %w", applicationID, err)
	}

	records := make([]writer.FeedbackRecord, 0, len(items))
	for i := range items {
		if items[i].ID == "" {
			continue
		}
		records = append(records, feedbackRecord(&items[i], applicationID, candidateID))
	}

	if err := r.writer.UpsertFeedback(ctx, records); err != nil {
		return 0, fmt.Errorf("failed to store feedback for application %s: %w", applicationID, err)
	}

	slog.Debug("Upserted feedback",
		"application_id", applicationID,
		"count", len(records))
	return len(records), nil
}

func candidateRecord(c *ashby.CandidateRef) writer.CandidateRecord {
	return writer.CandidateRecord{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.GetEmail(),
		Phone:     c.GetPhone(),
		Status:    c.Status,
		ResumeURL: c.ResumeURL,
	}
}

func applicationRecord(app *ashby.Application) writer.ApplicationRecord {
	return writer.ApplicationRecord{
		ID:               app.ID,
		CandidateID:      app.Candidate.ID,
		JobID:            app.JobID,
		Status:           app.Status,
		CurrentStageID:   app.CurrentStageID,
		CurrentStageName: app.StageTitle(),
	}
}

func feedbackRecord(f *ashby.Feedback, applicationID, candidateID string) writer.FeedbackRecord {
	record := writer.FeedbackRecord{
		ID:                    f.ID,
		CandidateID:           candidateID,
		ApplicationID:         applicationID,
		FeedbackText:          f.Feedback,
		OverallRecommendation: f.OverallRecommendation,
		SubmittedAt:           f.SubmittedTime(),
	}
	if f.SubmittedBy != nil {
		record.InterviewerName = f.SubmittedBy.DisplayName()
		record.InterviewerEmail = f.SubmittedBy.Email
	}
	return record
}
