// Package ashby is a client for the Ashby recruiting API. It wraps the
// POST-only endpoints with bounded retries and follows pagination cursors.
package ashby

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"maps"
	"time"

	"github.com/cenkalti/backoff/v5"
	"go.opentelemetry.io/otel/trace"

	"github.com/hrops/recruiting-server/internal/config"
	"github.com/hrops/recruiting-server/internal/httpclient"
	"github.com/hrops/recruiting-server/internal/otel"
)

const (
	// MaxAttempts is the number of tries for a single page before giving up
	MaxAttempts = 3

	// AcceptHeader pins the Ashby API version
	AcceptHeader = "application/json; version=1"

	// EndpointApplicationList lists application summaries
	EndpointApplicationList = "/application.list"

	// EndpointApplicationInfo returns a single application with its candidate
	EndpointApplicationInfo = "/application.info"

	// EndpointFeedbackList lists feedback submissions for an application
	EndpointFeedbackList = "/applicationFeedback.list"

	tracerName = "github.com/hrops/recruiting-server/ashby"
)

// Source is the subset of the Ashby API used by the sync engine
//
//go:generate mockgen -destination=mocks/mock_source.go -package=mocks -source=client.go Source
type Source interface {
	// ListApplications returns every application summary
	ListApplications(ctx context.Context) ([]ApplicationSummary, error)
	// GetApplication returns the full application record
	GetApplication(ctx context.Context, applicationID string) (*Application, error)
	// ListFeedback returns every feedback submission for an application
	ListFeedback(ctx context.Context, applicationID string) ([]Feedback, error)
}

var _ Source = (*Client)(nil)

// Client talks to the Ashby API
type Client struct {
	http       httpclient.Client
	baseURL    string
	apiKey     string
	retryDelay time.Duration
	maxPages   int
	tracer     trace.Tracer
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(c httpclient.Client) Option {
	return func(client *Client) {
		client.http = c
	}
}

// WithRetryDelay overrides the delay between attempts
func WithRetryDelay(d time.Duration) Option {
	return func(client *Client) {
		client.retryDelay = d
	}
}

// WithMaxPages overrides the pagination safety valve
func WithMaxPages(n int) Option {
	return func(client *Client) {
		client.maxPages = n
	}
}

// WithTracer enables request spans
func WithTracer(tracer trace.Tracer) Option {
	return func(client *Client) {
		client.tracer = tracer
	}
}

// WithTracerProvider enables request spans from a provider
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(client *Client) {
		if tp != nil {
			client.tracer = tp.Tracer(tracerName)
		}
	}
}

// NewClient creates a Client from configuration
func NewClient(cfg *config.AshbyConfig, opts ...Option) (*Client, error) {
	if cfg == nil {
		return nil, fmt.Errorf("ashby configuration is required")
	}

	apiKey, err := cfg.GetAPIKey()
	if err != nil {
		return nil, fmt.Errorf("failed to load Ashby API key: %w", err)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("no Ashby API key configured: set apiKeyFile or %s_ASHBY_API_KEY", config.EnvPrefix)
	}

	c := &Client{
		http:       httpclient.NewDefaultClient(cfg.GetRequestTimeout()),
		baseURL:    cfg.GetBaseURL(),
		apiKey:     apiKey,
		retryDelay: cfg.GetRetryDelay(),
		maxPages:   cfg.GetMaxPages(),
	}
	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// FetchPage POSTs payload to endpoint and decodes the response envelope.
// Transient failures, including success=false responses, are retried up to
// MaxAttempts times with a fixed delay.
func (c *Client) FetchPage(ctx context.Context, endpoint string, payload map[string]any) (*Page, error) {
	ctx, span := otel.StartSpan(ctx, c.tracer, "ashby.FetchPage",
		trace.WithAttributes(
			otel.AttrAshbyEndpoint.String(endpoint),
			otel.AttrHasCursor.Bool(payload["cursor"] != nil),
		),
	)
	defer span.End()

	url := c.baseURL + endpoint
	attempt := 0
	permanent := false

	operation := func() (*Page, error) {
		attempt++
		page, err := c.fetchOnce(ctx, url, endpoint, payload)
		if err == nil {
			return page, nil
		}

		slog.Warn("Ashby request failed",
			"endpoint", endpoint,
			"attempt", attempt,
			"max_attempts", MaxAttempts,
			"error", err)

		if !isRetryable(ctx, err) {
			permanent = true
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	page, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewConstantBackOff(c.retryDelay)),
		backoff.WithMaxTries(MaxAttempts),
		backoff.WithMaxElapsedTime(0),
	)
	span.SetAttributes(otel.AttrAttempt.Int(attempt))
	if err != nil {
		otel.RecordError(span, err)
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(err, ctxErr) {
				return nil, err
			}
			return nil, fmt.Errorf("%w: %s: %w", ctxErr, endpoint, err)
		}
		if permanent {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s after %d attempts: %w", ErrRetriesExhausted, endpoint, attempt, err)
	}

	span.SetAttributes(otel.AttrResultCount.Int(len(page.Records)))
	return page, nil
}

// fetchOnce performs a single attempt
func (c *Client) fetchOnce(ctx context.Context, url, endpoint string, payload map[string]any) (*Page, error) {
	body, err := c.http.PostJSON(ctx, url, payload,
		httpclient.WithBasicAuth(c.apiKey, ""),
		httpclient.WithHeader("Accept", AcceptHeader),
	)
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response from %s: %w", endpoint, err)
	}

	if env.Success != nil && !*env.Success {
		return nil, &APIError{Endpoint: endpoint, ErrorInfo: env.ErrorInfo, Errors: env.Errors}
	}

	records, err := splitResults(env.Results)
	if err != nil {
		return nil, fmt.Errorf("failed to decode results from %s: %w", endpoint, err)
	}

	return &Page{
		Records:       records,
		MoreAvailable: env.MoreDataAvailable,
		NextCursor:    env.NextCursor,
	}, nil
}

// splitResults turns a results value into records: arrays yield their
// elements, objects yield themselves, and null yields nothing.
func splitResults(raw json.RawMessage) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var records []json.RawMessage
		if err := json.Unmarshal(trimmed, &records); err != nil {
			return nil, err
		}
		return records, nil
	}
	return []json.RawMessage{trimmed}, nil
}

// isRetryable reports whether another attempt may succeed. Client errors
// other than 429 and context cancellation are final.
func isRetryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		return false
	}
	var httpErr *httpclient.HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Temporary()
	}
	return true
}

// Records iterates over every record of a paginated endpoint, fetching pages
// on demand. The base payload is copied and never modified. Each iteration
// starts from the first page.
func (c *Client) Records(ctx context.Context, endpoint string, basePayload map[string]any) iter.Seq2[json.RawMessage, error] {
	return func(yield func(json.RawMessage, error) bool) {
		payload := maps.Clone(basePayload)
		if payload == nil {
			payload = map[string]any{}
		}

		total := 0
		for pageNum := 1; ; pageNum++ {
			if c.maxPages > 0 && pageNum > c.maxPages {
				yield(nil, fmt.Errorf("%w: %s returned more than %d pages", ErrPageLimitExceeded, endpoint, c.maxPages))
				return
			}

			page, err := c.FetchPage(ctx, endpoint, payload)
			if err != nil {
				yield(nil, err)
				return
			}

			total += len(page.Records)
			slog.Debug("Fetched Ashby page",
				"endpoint", endpoint,
				"page", pageNum,
				"count", len(page.Records),
				"total", total)

			for _, record := range page.Records {
				if !yield(record, nil) {
					return
				}
			}

			if !page.MoreAvailable || page.NextCursor == "" {
				return
			}
			payload["cursor"] = page.NextCursor
		}
	}
}

// ListAll collects every record of a paginated endpoint
func (c *Client) ListAll(ctx context.Context, endpoint string, basePayload map[string]any) ([]json.RawMessage, error) {
	var all []json.RawMessage
	for record, err := range c.Records(ctx, endpoint, basePayload) {
		if err != nil {
			return nil, err
		}
		all = append(all, record)
	}

	slog.Info("Fetched Ashby listing", "endpoint", endpoint, "total", len(all))
	return all, nil
}

// ListApplications returns every application summary
func (c *Client) ListApplications(ctx context.Context) ([]ApplicationSummary, error) {
	records, err := c.ListAll(ctx, EndpointApplicationList, nil)
	if err != nil {
		return nil, err
	}
	return decodeRecords[ApplicationSummary](EndpointApplicationList, records)
}

// GetApplication returns the full application record
func (c *Client) GetApplication(ctx context.Context, applicationID string) (*Application, error) {
	if applicationID == "" {
		return nil, fmt.Errorf("%w: application id is required", ErrMissingID)
	}

	page, err := c.FetchPage(ctx, EndpointApplicationInfo, map[string]any{"applicationId": applicationID})
	if err != nil {
		return nil, err
	}
	if len(page.Records) == 0 {
		return nil, fmt.Errorf("%w: application %s", ErrEmptyResult, applicationID)
	}

	var app Application
	if err := json.Unmarshal(page.Records[0], &app); err != nil {
		return nil, fmt.Errorf("failed to decode application %s: %w", applicationID, err)
	}
	if app.ID == "" {
		return nil, fmt.Errorf("%w: application %s", ErrMissingID, applicationID)
	}
	return &app, nil
}

// ListFeedback returns every feedback submission for an application
func (c *Client) ListFeedback(ctx context.Context, applicationID string) ([]Feedback, error) {
	records, err := c.ListAll(ctx, EndpointFeedbackList, map[string]any{"applicationId": applicationID})
	if err != nil {
		return nil, err
	}
	return decodeRecords[Feedback](EndpointFeedbackList, records)
}

type identifiable interface {
	externalID() string
}

// decodeRecords decodes each record and drops those without an id
func decodeRecords[T identifiable](endpoint string, records []json.RawMessage) ([]T, error) {
	out := make([]T, 0, len(records))
	missing := 0
	for i, raw := range records {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return nil, fmt.Errorf("failed to decode record %d from %s: %w", i, endpoint, err)
		}
		if v.externalID() == "" {
			missing++
			continue
		}
		out = append(out, v)
	}

	if missing > 0 {
		slog.Warn("Dropped Ashby records without id",
			"endpoint", endpoint,
			"dropped", missing,
			"error", ErrMissingID)
	}
	return out, nil
}
