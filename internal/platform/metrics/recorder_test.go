package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestRecorder_NilIsNoop(t *testing.T) {
	var r *Recorder
	r.ObserveUpstream("/fixtures", "ok", time.Second)
	r.IncFallback("live", "local")
	r.ObserveHTTP(http.MethodGet, "/healthz", 200, time.Millisecond)
	if r.CacheObserver("feed") != nil {
		t.Fatalf("expected nil observer from nil recorder")
	}
}

func TestRecorder_CountsUpstreamAndFallbacks(t *testing.T) {
	r := NewRecorder()
	r.ObserveUpstream("/fixtures", "ok", 120*time.Millisecond)
	r.ObserveUpstream("/fixtures", "ok", 80*time.Millisecond)
	r.IncFallback("matches_by_date", "local")

	if got := testutil.ToFloat64(r.upstreamRequests.WithLabelValues("/fixtures", "ok")); got != 2 {
		t.Fatalf("expected 2 upstream requests, got %v", got)
	}
	if got := testutil.ToFloat64(r.feedFallbacks.WithLabelValues("matches_by_date", "local")); got != 1 {
		t.Fatalf("expected 1 fallback, got %v", got)
	}
}

func TestRecorder_CacheObserverAndCircuitState(t *testing.T) {
	r := NewRecorder()
	observe := r.CacheObserver("feed")
	observe(true)
	observe(false)
	observe(false)
	r.SetCircuitState("open")

	if got := testutil.ToFloat64(r.cacheLookups.WithLabelValues("feed", "miss")); got != 2 {
		t.Fatalf("expected 2 misses, got %v", got)
	}
	if got := testutil.ToFloat64(r.circuitState.WithLabelValues("open")); got != 1 {
		t.Fatalf("expected open gauge to be 1, got %v", got)
	}
	if got := testutil.ToFloat64(r.circuitState.WithLabelValues("closed")); got != 0 {
		t.Fatalf("expected closed gauge to be 0, got %v", got)
	}
}

func TestRecorder_HandlerExposesMetrics(t *testing.T) {
	r := NewRecorder()
	r.ObserveHTTP(http.MethodGet, "GET /v1/matches/live", 200, 10*time.Millisecond)

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "football_portal_http_requests_total") {
		t.Fatalf("expected http metric in exposition")
	}
}
