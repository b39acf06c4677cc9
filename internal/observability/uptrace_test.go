package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/football-portal/internal/config"
	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

func TestInitUptrace_Disabled(t *testing.T) {
	cfg := config.Config{
		UptraceEnabled: false,
		ServiceName:    "football-portal-api",
		ServiceVersion: "dev",
		AppEnv:         config.EnvDev,
	}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestInitUptrace_EnabledWithoutDSNIsNoop(t *testing.T) {
	cfg := config.Config{UptraceEnabled: true, UptraceDSN: "  "}

	shutdown, err := InitUptrace(cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("init uptrace: %v", err)
	}
	if err := shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown uptrace: %v", err)
	}
}

func TestStart_AllDisabled(t *testing.T) {
	rt, err := Start(config.Config{AppEnv: config.EnvDev}, logging.NewNop())
	if err != nil {
		t.Fatalf("start observability: %v", err)
	}
	if rt.pprof != nil {
		t.Fatalf("expected no pprof server when disabled")
	}
	if err := rt.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestPprofMux_ServesIndex(t *testing.T) {
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from pprof index, got %d", rec.Code)
	}
}

func TestPprofMux_ServesNamedProfile(t *testing.T) {
	rec := httptest.NewRecorder()
	newPprofMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/goroutine?debug=1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from goroutine profile, got %d", rec.Code)
	}
}

func TestProfileTags(t *testing.T) {
	tags := profileTags(config.Config{
		AppEnv:         config.EnvProd,
		ServiceName:    "football-portal-api",
		ServiceVersion: "1.4.0",
		StorageDriver:  config.StoragePostgres,
		FootballAPIURL: "https://v3.football.api-sports.io",
	})

	if tags["upstream"] != "v3.football.api-sports.io" {
		t.Fatalf("unexpected upstream tag %q", tags["upstream"])
	}
	if tags["storage"] != config.StoragePostgres || tags["env"] != config.EnvProd {
		t.Fatalf("unexpected tags: %v", tags)
	}

	if _, ok := profileTags(config.Config{})["upstream"]; ok {
		t.Fatalf("expected no upstream tag without api url")
	}
}
