package telemetry

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	// HTTPMetricsMeterName is the name used for the HTTP metrics meter
	HTTPMetricsMeterName = "github.com/hrops/recruiting-server/http"

	unknownRoute = "unknown_route"
)

// API surfaces reported in the surface attribute of HTTP metrics
const (
	SurfaceSystem     = "system"
	SurfaceCandidates = "candidates"
	SurfaceSync       = "sync"
	SurfaceWebhook    = "webhook"
	SurfacePolicies   = "policies"
	SurfaceOther      = "other"
)

// Full syncs and LLM calls run for tens of seconds, so the buckets reach well past
// the short-request range
var httpDurationBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300}

// HTTPMetrics holds the OpenTelemetry instruments for HTTP metrics
type HTTPMetrics struct {
	requestDuration metric.Float64Histogram
	requestsTotal   metric.Int64Counter
	activeRequests  metric.Int64UpDownCounter
}

// NewHTTPMetrics creates the HTTP instruments. A nil provider yields nil metrics,
// whose Middleware is a pass-through.
func NewHTTPMetrics(provider metric.MeterProvider) (*HTTPMetrics, error) {
	if provider == nil {
		return nil, nil
	}

	meter := provider.Meter(HTTPMetricsMeterName)

	requestDuration, err := meter.Float64Histogram(
		"recruiting_http_request_duration_seconds",
		metric.WithDescription("Duration of HTTP requests in seconds"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(httpDurationBuckets...),
	)
	if err != nil {
		return nil, err
	}

	requestsTotal, err := meter.Int64Counter(
		"recruiting_http_requests_total",
		metric.WithDescription("Total number of HTTP requests"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	activeRequests, err := meter.Int64UpDownCounter(
		"recruiting_http_active_requests",
		metric.WithDescription("Number of in-flight HTTP requests per API surface"),
		metric.WithUnit("{request}"),
	)
	if err != nil {
		return nil, err
	}

	return &HTTPMetrics{
		requestDuration: requestDuration,
		requestsTotal:   requestsTotal,
		activeRequests:  activeRequests,
	}, nil
}

// Middleware records duration, count and in-flight gauges for each request
func (m *HTTPMetrics) Middleware(next http.Handler) http.Handler {
	if m == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Capture context at the start - it may be cancelled after ServeHTTP returns
		ctx := r.Context()
		start := time.Now()

		// The route is unknown until chi has matched, so in-flight requests are
		// grouped by the path prefix instead
		inflight := metric.WithAttributes(attribute.String("surface", Surface(r.URL.Path)))
		m.activeRequests.Add(ctx, 1, inflight)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		m.activeRequests.Add(ctx, -1, inflight)

		route := getRoutePattern(r)
		attrs := metric.WithAttributes(
			attribute.String("method", r.Method),
			attribute.String("route", route),
			attribute.String("surface", Surface(r.URL.Path)),
			attribute.String("status_code", strconv.Itoa(ww.Status())),
		)

		m.requestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
		m.requestsTotal.Add(ctx, 1, attrs)
	})
}

// Surface maps a request path onto the API surface it belongs to
func Surface(path string) string {
	switch {
	case path == "/health", path == "/readiness", path == "/version", path == "/metrics":
		return SurfaceSystem
	case path == "/candidates", strings.HasPrefix(path, "/candidates/"):
		return SurfaceCandidates
	case path == "/ashby/webhook":
		return SurfaceWebhook
	case strings.HasPrefix(path, "/ashby/sync/"):
		return SurfaceSync
	case strings.HasPrefix(path, "/api/"):
		return SurfacePolicies
	default:
		return SurfaceOther
	}
}

// getRoutePattern returns the matched chi route pattern, or a constant for
// unmatched requests so arbitrary paths cannot inflate label cardinality.
func getRoutePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx != nil && rctx.RoutePattern() != "" {
		return rctx.RoutePattern()
	}
	return unknownRoute
}

// MetricsMiddleware builds HTTPMetrics from provider and returns its middleware
func MetricsMiddleware(provider metric.MeterProvider) (func(http.Handler) http.Handler, error) {
	metrics, err := NewHTTPMetrics(provider)
	if err != nil {
		return nil, err
	}
	return metrics.Middleware, nil
}
