// Package database provides a database-backed implementation of the Service interface
package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/internal/db/sqlc"
	"github.com/hrops/recruiting-server/internal/llm"
	"github.com/hrops/recruiting-server/internal/otel"
	"github.com/hrops/recruiting-server/internal/service"
)

// options holds configuration options for the database service
type options struct {
	pool      *pgxpool.Pool
	completer llm.Completer
	tracer    trace.Tracer
}

// Option is a functional option for configuring the database service
type Option func(*options) error

// WithConnectionPool sets the pgx pool. The caller is responsible for closing
// the pool when it is done.
func WithConnectionPool(pool *pgxpool.Pool) Option {
	return func(o *options) error {
		if pool == nil {
			return fmt.Errorf("pgx pool is required")
		}
		o.pool = pool
		return nil
	}
}

// WithCompleter sets the LLM used by the authoring operations.
// Without one, those operations fail with service.ErrAIDisabled.
func WithCompleter(completer llm.Completer) Option {
	return func(o *options) error {
		o.completer = completer
		return nil
	}
}

// WithTracer sets the OpenTelemetry tracer for the database service.
// If not set, tracing will be disabled (no-op).
func WithTracer(tracer trace.Tracer) Option {
	return func(o *options) error {
		o.tracer = tracer
		return nil
	}
}

// dbService implements the Service interface using a database backend
type dbService struct {
	pool      *pgxpool.Pool
	completer llm.Completer
	tracer    trace.Tracer
}

var _ service.Service = (*dbService)(nil)

// New creates a new database-backed service with the given options
func New(opts ...Option) (service.Service, error) {
	o := &options{}

	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}

	if o.pool == nil {
		return nil, fmt.Errorf("pgx pool is required")
	}

	completer := o.completer
	if completer == nil {
		var err error
		if completer, err = llm.NewCompleter(nil); err != nil {
			return nil, err
		}
	}

	return &dbService{
		pool:      o.pool,
		completer: completer,
		tracer:    o.tracer,
	}, nil
}

// CheckReadiness checks if the service is ready to serve requests
func (s *dbService) CheckReadiness(ctx context.Context) error {
	err := s.pool.Ping(ctx)
	if err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}

func (s *dbService) ListCandidates(ctx context.Context) ([]service.CandidateSummary, error) {
	ctx, span := s.startSpan(ctx, "dbService.ListCandidates")
	defer span.End()

	rows, err := sqlc.New(s.pool).ListCandidates(ctx)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}

	result := make([]service.CandidateSummary, 0, len(rows))
	for _, row := range rows {
		result = append(result, service.CandidateSummary{
			ID:    row.ID,
			Name:  row.Name,
			Email: deref(row.Email),
		})
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	return result, nil
}

func (s *dbService) CountCandidates(ctx context.Context) (int64, error) {
	count, err := sqlc.New(s.pool).CountCandidates(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count candidates: %w", err)
	}
	return count, nil
}

// GetCandidate reads the candidate, its applications and its feedback in one
// read-only transaction so the three reads see the same snapshot.
func (s *dbService) GetCandidate(ctx context.Context, id string) (*service.CandidateDetail, error) {
	ctx, span := s.startSpan(ctx, "dbService.GetCandidate",
		trace.WithAttributes(otel.AttrCandidateID.String(id)),
	)
	defer span.End()

	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Warn("Failed to roll back read transaction", "error", err)
		}
	}()

	queries := sqlc.New(tx)

	candidate, err := queries.GetCandidate(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", service.ErrCandidateNotFound, id)
	}
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to get candidate %s: %w", id, err)
	}

	applications, err := queries.ListApplicationsByCandidate(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list applications for candidate %s: %w", id, err)
	}

	feedback, err := queries.ListFeedbackByCandidate(ctx, id)
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list feedback for candidate %s: %w", id, err)
	}

	return toCandidateDetail(candidate, applications, feedback), nil
}

func (s *dbService) GeneratePolicy(ctx context.Context, req service.PolicyRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.complete(ctx, "dbService.GeneratePolicy", service.GeneratePolicyPrompt(req))
}

func (s *dbService) RefinePolicy(ctx context.Context, req service.RefinePolicyRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.complete(ctx, "dbService.RefinePolicy", service.RefinePolicyPrompt(req))
}

func (s *dbService) SavePolicyVersion(ctx context.Context, version service.PolicyVersion) (uuid.UUID, error) {
	if err := version.Validate(); err != nil {
		return uuid.Nil, err
	}

	ctx, span := s.startSpan(ctx, "dbService.SavePolicyVersion")
	defer span.End()

	id, err := sqlc.New(s.pool).InsertPolicyVersion(ctx, sqlc.InsertPolicyVersionParams{
		Business:            version.Business,
		PolicyType:          version.PolicyType,
		TargetAudience:      nullable(version.TargetAudience),
		EffectiveDate:       nullable(version.EffectiveDate),
		ReviewCycle:         nullable(version.ReviewCycle),
		LegalConsiderations: nullable(version.LegalConsiderations),
		AdditionalContext:   nullable(version.AdditionalContext),
		DraftContent:        version.DraftContent,
	})
	if err != nil {
		recordError(span, err)
		return uuid.Nil, fmt.Errorf("failed to save policy version: %w", err)
	}
	return id, nil
}

func (s *dbService) ListPolicyVersions(ctx context.Context, business, policyType string) ([]service.PolicyVersion, error) {
	if strings.TrimSpace(business) == "" || strings.TrimSpace(policyType) == "" {
		return nil, fmt.Errorf("%w: business and policy_type are required", service.ErrInvalidRequest)
	}

	ctx, span := s.startSpan(ctx, "dbService.ListPolicyVersions")
	defer span.End()

	rows, err := sqlc.New(s.pool).ListPolicyVersions(ctx, sqlc.ListPolicyVersionsParams{
		Business:   business,
		PolicyType: policyType,
	})
	if err != nil {
		recordError(span, err)
		return nil, fmt.Errorf("failed to list policy versions: %w", err)
	}

	result := make([]service.PolicyVersion, 0, len(rows))
	for _, row := range rows {
		result = append(result, toPolicyVersion(row))
	}
	span.SetAttributes(otel.AttrResultCount.Int(len(result)))
	return result, nil
}

func (s *dbService) UploadPolicy(ctx context.Context, req service.PolicyUpload) (uuid.UUID, error) {
	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}

	id, err := sqlc.New(s.pool).InsertPolicy(ctx, sqlc.InsertPolicyParams{
		Title:   nullable(req.Title),
		Content: req.PolicyText,
	})
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upload policy: %w", err)
	}
	return id, nil
}

func (s *dbService) ListPolicies(ctx context.Context) ([]service.Policy, error) {
	rows, err := sqlc.New(s.pool).ListPolicies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list policies: %w", err)
	}

	result := make([]service.Policy, 0, len(rows))
	for _, row := range rows {
		result = append(result, toPolicy(row))
	}
	return result, nil
}

func (s *dbService) QueryPolicies(ctx context.Context, question string) (string, error) {
	if strings.TrimSpace(question) == "" {
		return "", fmt.Errorf("%w: query is required", service.ErrInvalidRequest)
	}

	policies, err := s.ListPolicies(ctx)
	if err != nil {
		return "", err
	}
	return s.complete(ctx, "dbService.QueryPolicies", service.QueryPoliciesPrompt(policies, question))
}

func (s *dbService) GenerateJobDescription(ctx context.Context, req service.JobDescriptionRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}
	return s.complete(ctx, "dbService.GenerateJobDescription", service.GenerateJobDescriptionPrompt(req))
}

func (s *dbService) AnalyzeJobDescription(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", fmt.Errorf("%w: description is required", service.ErrInvalidRequest)
	}
	return s.complete(ctx, "dbService.AnalyzeJobDescription", service.AnalyzeJobDescriptionPrompt(description))
}

func (s *dbService) ImproveJobDescription(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return "", fmt.Errorf("%w: description is required", service.ErrInvalidRequest)
	}
	return s.complete(ctx, "dbService.ImproveJobDescription", service.ImproveJobDescriptionPrompt(description))
}

func (s *dbService) GenerateInterviewQuestions(
	ctx context.Context, req service.InterviewQuestionsRequest,
) ([]service.InterviewQuestion, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out, err := s.complete(ctx, "dbService.GenerateInterviewQuestions", service.GenerateInterviewQuestionsPrompt(req))
	if err != nil {
		return nil, err
	}

	questions, err := service.ParseInterviewQuestions(out)
	if err != nil {
		slog.Warn("Interview questions were not valid JSON", "job_title", req.JobTitle, "error", err)
		return []service.InterviewQuestion{}, nil
	}
	return questions, nil
}

func (s *dbService) GenerateCompetencies(
	ctx context.Context, req service.CompetencyRequest,
) ([]service.CompetencyDescription, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	descriptions := make([]service.CompetencyDescription, 0, len(req.Positions))
	for _, pos := range req.Positions {
		out, err := s.complete(ctx, "dbService.GenerateCompetencies", service.GenerateCompetenciesPrompt(req.Department, pos))
		if err != nil {
			return nil, err
		}
		descriptions = append(descriptions, service.CompetencyDescription{
			Title:     pos.Title,
			Breakdown: service.ParseCompetencyBreakdown(out),
		})
	}
	return descriptions, nil
}

func (s *dbService) AssessCandidateAnswer(
	ctx context.Context, req service.AnswerAssessmentRequest,
) (*service.AnswerAssessment, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	out, err := s.complete(ctx, "dbService.AssessCandidateAnswer", service.AssessCandidateAnswerPrompt(req))
	if err != nil {
		return nil, err
	}

	assessment := service.ParseAnswerAssessment(out)
	return &assessment, nil
}

func (s *dbService) complete(ctx context.Context, name string, prompt service.Prompt) (string, error) {
	ctx, span := otel.StartSpan(ctx, s.tracer, name)
	defer span.End()

	out, err := s.completer.Complete(ctx, prompt.Text, prompt.Options)
	if err != nil {
		if !errors.Is(err, llm.ErrDisabled) {
			recordError(span, err)
			slog.Error("LLM completion failed", "operation", name, "error", err)
		}
		return "", err
	}
	return out, nil
}
