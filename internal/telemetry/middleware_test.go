package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

// newMetricsRouter mounts the HTTP metrics middleware on a router shaped like the API
func newMetricsRouter(t *testing.T) (*sdkmetric.ManualReader, http.Handler) {
	t.Helper()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	mw, err := MetricsMiddleware(mp)
	require.NoError(t, err)

	candidates := chi.NewRouter()
	candidates.Get("/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r := chi.NewRouter()
	r.Use(mw)
	r.Mount("/candidates", candidates)
	r.Post("/ashby/sync/full", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	return reader, r
}

func collectRequests(t *testing.T, reader *sdkmetric.ManualReader) []metricdata.DataPoint[int64] {
	t.Helper()

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	for _, sm := range rm.ScopeMetrics {
		if sm.Scope.Name != HTTPMetricsMeterName {
			continue
		}
		for _, m := range sm.Metrics {
			if m.Name == "recruiting_http_requests_total" {
				sum, ok := m.Data.(metricdata.Sum[int64])
				require.True(t, ok)
				return sum.DataPoints
			}
		}
	}
	return nil
}

func attrValue(set attribute.Set, key string) string {
	v, _ := set.Value(attribute.Key(key))
	return v.AsString()
}

func TestNewHTTPMetrics_NilProvider(t *testing.T) {
	t.Parallel()

	metrics, err := NewHTTPMetrics(nil)
	require.NoError(t, err)
	assert.Nil(t, metrics)

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
		w.WriteHeader(http.StatusNoContent)
	})

	rr := httptest.NewRecorder()
	metrics.Middleware(next).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.True(t, called)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestHTTPMetrics_RecordsRouteAndSurface(t *testing.T) {
	t.Parallel()

	reader, router := newMetricsRouter(t)

	for _, path := range []string{"/candidates/c-1", "/candidates/c-2"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusOK, rr.Code)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/ashby/sync/full", nil))
	require.Equal(t, http.StatusBadGateway, rr.Code)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/no/such/route", nil))
	require.Equal(t, http.StatusNotFound, rr.Code)

	points := collectRequests(t, reader)
	byRoute := map[string]metricdata.DataPoint[int64]{}
	for _, p := range points {
		byRoute[attrValue(p.Attributes, "route")] = p
	}

	candidate, ok := byRoute["/candidates/{id}"]
	require.True(t, ok, "candidate ids must collapse onto the route pattern")
	assert.Equal(t, int64(2), candidate.Value)
	assert.Equal(t, SurfaceCandidates, attrValue(candidate.Attributes, "surface"))
	assert.Equal(t, "200", attrValue(candidate.Attributes, "status_code"))

	sync, ok := byRoute["/ashby/sync/full"]
	require.True(t, ok)
	assert.Equal(t, SurfaceSync, attrValue(sync.Attributes, "surface"))
	assert.Equal(t, "502", attrValue(sync.Attributes, "status_code"))

	unknown, ok := byRoute[unknownRoute]
	require.True(t, ok)
	assert.Equal(t, SurfaceOther, attrValue(unknown.Attributes, "surface"))
}

func TestSurface(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want string
	}{
		{path: "/health", want: SurfaceSystem},
		{path: "/readiness", want: SurfaceSystem},
		{path: "/version", want: SurfaceSystem},
		{path: "/metrics", want: SurfaceSystem},
		{path: "/candidates", want: SurfaceCandidates},
		{path: "/candidates/abc", want: SurfaceCandidates},
		{path: "/candidatesx", want: SurfaceOther},
		{path: "/ashby/webhook", want: SurfaceWebhook},
		{path: "/ashby/sync/full", want: SurfaceSync},
		{path: "/ashby/sync/status", want: SurfaceSync},
		{path: "/api/generate-policy", want: SurfacePolicies},
		{path: "/", want: SurfaceOther},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, Surface(tt.path))
		})
	}
}
