package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestHTTPMiddlewareRecordsRoutePattern(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics("test", reg)

	r := gin.New()
	r.Use(m.Middleware())
	r.GET("/services/:id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/services/abc", nil))
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if got := testutil.ToFloat64(m.ReqTotal.WithLabelValues("GET", "/services/:id", "200")); got != 2 {
		t.Fatalf("expected 2 requests for route, got %v", got)
	}
	if got := testutil.ToFloat64(m.ReqTotal.WithLabelValues("GET", "unknown", "404")); got != 1 {
		t.Fatalf("expected 1 unknown route, got %v", got)
	}
	if got := testutil.ToFloat64(m.InFlight); got != 0 {
		t.Fatalf("in flight should return to zero, got %v", got)
	}
}

func TestNewHTTPMetricsReusesRegisteredCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewHTTPMetrics("test", reg)
	second := NewHTTPMetrics("test", reg)
	if first.ReqTotal != second.ReqTotal {
		t.Fatalf("expected collectors to be reused")
	}
}

func TestDomainHelpers(t *testing.T) {
	ObserveQuote(true)
	MustRegisterDomainMetrics("test", prometheus.NewRegistry())

	before := testutil.ToFloat64(PricingQuotesTotal.WithLabelValues(ResultDiscounted))
	ObserveQuote(true)
	ObserveQuote(false)
	if got := testutil.ToFloat64(PricingQuotesTotal.WithLabelValues(ResultDiscounted)); got != before+1 {
		t.Fatalf("unexpected discounted count: %v", got)
	}
	ObserveWorkerTask("booking:confirmation_email", errors.New("boom"))
	if got := testutil.ToFloat64(WorkerTasksTotal.WithLabelValues("booking:confirmation_email", ResultError)); got != 1 {
		t.Fatalf("unexpected worker error count: %v", got)
	}
}
