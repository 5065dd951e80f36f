package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountsRequestsByStatus(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/climbers", "404"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "No climbers found", http.StatusNotFound)
	})

	req := httptest.NewRequest(http.MethodGet, "/climbers/42", nil)
	recorder := httptest.NewRecorder()
	Metrics(next).ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/climbers", "404"))
	assert.Equal(t, before+1, after)
}

func TestMetricsDefaultsToOKWhenHandlerNeverWritesHeader(t *testing.T) {
	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/health", "200"))

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	Metrics(next).ServeHTTP(httptest.NewRecorder(), req)

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/health", "200"))
	assert.Equal(t, before+1, after)
}

func TestMetricsHandlerServesRegistry(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()
	MetricsHandler().ServeHTTP(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "climbing_api_http_inflight_requests")
}

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"/", "/"},
		{"/climbers/", "/climbers"},
		{"/climbers/42", "/climbers"},
		{"/dashboard/scatterGradesByAge", "/dashboard"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizePath(tt.in))
	}
}
