// Package writer contains the SyncWriter interface and implementations
package writer

import (
	"context"
	"time"
)

//go:generate mockgen -destination=mocks/mock_sync_writer.go -package=mocks -source=writer.go SyncWriter

// CandidateRecord is the local copy of an Ashby candidate
type CandidateRecord struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Status    string
	ResumeURL string
}

// ApplicationRecord is the local copy of an Ashby application
type ApplicationRecord struct {
	ID               string
	CandidateID      string
	JobID            string
	Status           string
	CurrentStageID   string
	CurrentStageName string
}

// FeedbackRecord is the local copy of an interview feedback submission
type FeedbackRecord struct {
	ID                    string
	CandidateID           string
	ApplicationID         string
	InterviewerName       string
	InterviewerEmail      string
	FeedbackText          string
	OverallRecommendation string
	SubmittedAt           *time.Time
}

// SyncWriter defines the interface needed to persist synced recruiting data.
// Every write is create-or-replace keyed by the upstream id.
type SyncWriter interface {
	// UpsertApplication stores a candidate and its application as a single unit
	UpsertApplication(ctx context.Context, candidate CandidateRecord, application ApplicationRecord) error
	// UpsertFeedback stores a batch of feedback as a single unit
	UpsertFeedback(ctx context.Context, feedback []FeedbackRecord) error
}
