package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/riskibarqy/football-portal/internal/config"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
	"github.com/riskibarqy/football-portal/internal/platform/resilience"
)

func memoryConfig(upstreamURL string) config.Config {
	return config.Config{
		AppEnv:                  config.EnvDev,
		HTTPAddr:                ":0",
		ReadTimeout:             time.Second,
		WriteTimeout:            time.Second,
		StorageDriver:           config.StorageMemory,
		RepositoryCacheEnabled:  true,
		RepositoryCacheTTL:      time.Minute,
		FootballAPIURL:          upstreamURL,
		FootballAPIKey:          "test-key",
		FootballAPITimeout:      time.Second,
		FootballCircuit:         resilience.CircuitBreakerConfig{Enabled: false},
		FootballCacheTTL:        5 * time.Minute,
		FootballCacheMaxEntries: 128,
		MajorLeagueIDs:          []int64{39, 140},
		FeaturedDays:            4,
		FeaturedLimit:           6,
		RangeMaxDays:            7,
		FetchConcurrency:        2,
		DisplayTimezone:         time.UTC,
		TopScorersLimit:         10,
		TokenTTL:                time.Hour,
		BcryptCost:              4,
		JWTIssuer:               "football-portal-test",
		CORSOrigins:             []string{"*"},
		MetricsEnabled:          true,
	}
}

func newFailingUpstream(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestNew_MemoryStorageServesRoutes(t *testing.T) {
	upstreamSrv := newFailingUpstream(t)

	a, err := New(context.Background(), memoryConfig(upstreamSrv.URL), logging.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	t.Cleanup(func() { _ = a.Close() })

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/matches/live", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected live matches 200, got %d body=%s", rec.Code, rec.Body.String())
	}
	var payload struct {
		Data struct {
			Source string `json:"source"`
		} `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode live response: %v", err)
	}
	if payload.Data.Source != "local" {
		t.Fatalf("expected local source with failing upstream, got %q", payload.Data.Source)
	}

	rec = httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected metrics 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "feed_fallback") {
		t.Fatalf("expected fallback counter in metrics output")
	}
}

func TestNew_MetricsDisabledHidesEndpoint(t *testing.T) {
	cfg := memoryConfig(newFailingUpstream(t).URL)
	cfg.MetricsEnabled = false

	a, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	rec := httptest.NewRecorder()
	a.Server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 without metrics, got %d", rec.Code)
	}
}

func TestNew_RejectsUnknownStorageDriver(t *testing.T) {
	cfg := memoryConfig("http://127.0.0.1:1")
	cfg.StorageDriver = "mongo"

	if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for unknown storage driver")
	}
}

func TestNew_RejectsEmptyAddr(t *testing.T) {
	cfg := memoryConfig("http://127.0.0.1:1")
	cfg.HTTPAddr = ""

	if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty http addr")
	}
}

func TestApp_WarmReturnsWithFailingUpstream(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(newFailingUpstream(t).URL), logging.NewNop())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	done := make(chan struct{})
	go func() {
		a.Warm(context.Background())
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatalf("warm did not return")
	}
}
