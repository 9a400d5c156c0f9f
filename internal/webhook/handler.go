package webhook

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/hrops/recruiting-server/internal/api/common"
	"github.com/hrops/recruiting-server/internal/telemetry"
)

// MaxBodySize is the largest webhook body accepted
const MaxBodySize = 1 << 20

// Metric results that are not event outcomes
const (
	resultRejected = "rejected"
	resultInvalid  = "invalid"
)

// Handler serves POST /ashby/webhook
type Handler struct {
	verifier   *Verifier
	dispatcher Dispatcher
	metrics    *telemetry.WebhookMetrics
}

// HandlerOption configures a Handler
type HandlerOption func(*Handler)

// WithMetrics counts deliveries by event type and outcome
func WithMetrics(metrics *telemetry.WebhookMetrics) HandlerOption {
	return func(h *Handler) {
		h.metrics = metrics
	}
}

// NewHandler creates a webhook handler
func NewHandler(verifier *Verifier, dispatcher Dispatcher, opts ...HandlerOption) *Handler {
	h := &Handler{
		verifier:   verifier,
		dispatcher: dispatcher,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// ServeHTTP verifies, decodes and dispatches one delivery. Processing errors
// are logged and still acknowledged so that Ashby does not redeliver forever.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodySize))
	if err != nil {
		h.metrics.RecordEvent(ctx, "", resultInvalid)
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			common.WriteErrorResponse(w, "Request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		common.WriteErrorResponse(w, "Failed to read request body", http.StatusBadRequest)
		return
	}

	if err := h.verifier.Verify(body, r.Header.Get(SignatureHeader)); err != nil {
		slog.Warn("Rejected Ashby webhook",
			"error", err,
			"remote_addr", r.RemoteAddr)
		h.metrics.RecordEvent(ctx, "", resultRejected)
		common.WriteErrorResponse(w, err.Error(), StatusCode(err))
		return
	}

	var event Event
	if err := json.Unmarshal(body, &event); err != nil {
		h.metrics.RecordEvent(ctx, "", resultInvalid)
		common.WriteErrorResponse(w, "Invalid JSON payload", http.StatusBadRequest)
		return
	}

	slog.Info("Received Ashby webhook", "event_type", event.EventType)

	outcome, err := h.dispatcher.HandleEvent(ctx, event)
	if err != nil {
		slog.Error("Failed to process Ashby webhook",
			"event_type", event.EventType,
			"outcome", outcome,
			"error", err)
	}
	h.metrics.RecordEvent(ctx, event.EventType, string(outcome))

	if outcome == OutcomePong {
		common.WriteJSONResponse(w, map[string]string{"message": "pong"}, http.StatusOK)
		return
	}
	common.WriteJSONResponse(w, map[string]string{"status": "received"}, http.StatusOK)
}
