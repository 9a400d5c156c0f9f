// Package service provides the business logic behind the recruiting HTTP API:
// read access to the mirrored candidate data and AI-assisted authoring of HR
// policies, job descriptions and interview material.
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/hrops/recruiting-server/internal/llm"
)

var (
	// ErrCandidateNotFound is returned when no candidate has the requested id
	ErrCandidateNotFound = errors.New("candidate not found")

	// ErrInvalidRequest wraps request validation failures
	ErrInvalidRequest = errors.New("invalid request")

	// ErrAIDisabled is returned by authoring operations when no LLM provider is configured
	ErrAIDisabled = llm.ErrDisabled
)

//go:generate mockgen -destination=mocks/mock_service.go -package=mocks -source=service.go Service

// Service defines the operations exposed by the HTTP API
type Service interface {
	// CheckReadiness checks if the service is ready to serve requests
	CheckReadiness(ctx context.Context) error

	// ListCandidates returns every mirrored candidate ordered by name
	ListCandidates(ctx context.Context) ([]CandidateSummary, error)

	// CountCandidates returns the number of mirrored candidates
	CountCandidates(ctx context.Context) (int64, error)

	// GetCandidate returns a candidate with its applications and feedback
	GetCandidate(ctx context.Context, id string) (*CandidateDetail, error)

	// GeneratePolicy drafts an HR policy document
	GeneratePolicy(ctx context.Context, req PolicyRequest) (string, error)

	// RefinePolicy rewrites a policy draft to address reviewer feedback
	RefinePolicy(ctx context.Context, req RefinePolicyRequest) (string, error)

	// SavePolicyVersion stores a policy draft and returns its id
	SavePolicyVersion(ctx context.Context, version PolicyVersion) (uuid.UUID, error)

	// ListPolicyVersions returns the stored drafts for a business and policy type, newest first
	ListPolicyVersions(ctx context.Context, business, policyType string) ([]PolicyVersion, error)

	// UploadPolicy stores a finished policy and returns its id
	UploadPolicy(ctx context.Context, req PolicyUpload) (uuid.UUID, error)

	// ListPolicies returns every stored policy, newest first
	ListPolicies(ctx context.Context) ([]Policy, error)

	// QueryPolicies answers a question using every stored policy as context
	QueryPolicies(ctx context.Context, question string) (string, error)

	// GenerateJobDescription drafts a job description
	GenerateJobDescription(ctx context.Context, req JobDescriptionRequest) (string, error)

	// AnalyzeJobDescription reviews a job description for biased language
	AnalyzeJobDescription(ctx context.Context, description string) (string, error)

	// ImproveJobDescription rewrites a job description for clarity and inclusivity
	ImproveJobDescription(ctx context.Context, description string) (string, error)

	// GenerateInterviewQuestions drafts questions with follow-ups for a role.
	// An unparseable model answer yields an empty list.
	GenerateInterviewQuestions(ctx context.Context, req InterviewQuestionsRequest) ([]InterviewQuestion, error)

	// GenerateCompetencies describes every position against the company values
	GenerateCompetencies(ctx context.Context, req CompetencyRequest) ([]CompetencyDescription, error)

	// AssessCandidateAnswer scores a candidate's answer to an interview question
	AssessCandidateAnswer(ctx context.Context, req AnswerAssessmentRequest) (*AnswerAssessment, error)
}
