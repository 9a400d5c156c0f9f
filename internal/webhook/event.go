package webhook

import (
	"context"
	"encoding/json"
)

// Event types sent by Ashby
const (
	EventPing           = "ping"
	EventStageChange    = "candidate.stage.change"
	EventFeedbackSubmit = "application.feedback.submit"
)

// Event is the body of an inbound webhook
type Event struct {
	EventType string          `json:"eventType"`
	Data      json.RawMessage `json:"data"`
}

// Outcome describes what handling an event did
type Outcome string

// Event outcomes
const (
	OutcomePong       Outcome = "pong"
	OutcomeReconciled Outcome = "reconciled"
	OutcomeIgnored    Outcome = "ignored"
	OutcomeSkipped    Outcome = "skipped"
	OutcomeFailed     Outcome = "failed"
)

// Dispatcher applies a verified event to local state
//
//go:generate mockgen -destination=mocks/mock_dispatcher.go -package=mocks -source=event.go Dispatcher
type Dispatcher interface {
	HandleEvent(ctx context.Context, event Event) (Outcome, error)
}
