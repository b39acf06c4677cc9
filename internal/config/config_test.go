package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":8080" || cfg.StorageDriver != StorageMemory {
		t.Fatalf("unexpected defaults addr=%q storage=%q", cfg.HTTPAddr, cfg.StorageDriver)
	}
	if cfg.FootballCacheTTL != 5*time.Minute {
		t.Fatalf("expected 5m football cache ttl, got %s", cfg.FootballCacheTTL)
	}
	if cfg.FeaturedDays != 4 || cfg.FeaturedLimit != 6 || cfg.RangeMaxDays != 7 {
		t.Fatalf("unexpected feed defaults days=%d limit=%d range=%d", cfg.FeaturedDays, cfg.FeaturedLimit, cfg.RangeMaxDays)
	}
	want := []int64{39, 140, 135, 78, 61}
	if len(cfg.MajorLeagueIDs) != len(want) {
		t.Fatalf("unexpected major leagues %v", cfg.MajorLeagueIDs)
	}
	for i := range want {
		if cfg.MajorLeagueIDs[i] != want[i] {
			t.Fatalf("major league %d = %d, want %d", i, cfg.MajorLeagueIDs[i], want[i])
		}
	}
	if cfg.DisplayTimezone == nil || cfg.DisplayTimezone.String() != "Europe/Madrid" {
		t.Fatalf("unexpected display timezone %v", cfg.DisplayTimezone)
	}
	if !cfg.FootballCircuit.Enabled || cfg.FootballCircuit.FailureThreshold != 5 {
		t.Fatalf("unexpected circuit defaults %+v", cfg.FootballCircuit)
	}
}

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_ProdRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when AUTH_JWT_SECRET is missing in prod")
	}
}

func TestLoad_PostgresRequiresDBURL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DB_URL", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when STORAGE_DRIVER=postgres without DB_URL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "foo=bar,uptrace-dsn=\"https://token@api.uptrace.dev?grpc=4317\"")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev?grpc=4317" {
		t.Fatalf("unexpected UptraceDSN: %q", cfg.UptraceDSN)
	}
}

func TestLoad_ReportsEveryParseError(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_CACHE_TTL", "soon")
	t.Setenv("FOOTBALL_FEATURED_DAYS", "four")
	t.Setenv("FOOTBALL_MAJOR_LEAGUES", "39,abc")

	_, err := Load()
	if err == nil {
		t.Fatalf("expected parse errors")
	}
	for _, key := range []string{"FOOTBALL_CACHE_TTL", "FOOTBALL_FEATURED_DAYS", "FOOTBALL_MAJOR_LEAGUES"} {
		if !strings.Contains(err.Error(), key) {
			t.Fatalf("expected error to mention %s, got %v", key, err)
		}
	}
}

func TestLoad_FileThenEnvPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := []byte("APP_HTTP_ADDR: \":9090\"\nFOOTBALL_FEATURED_LIMIT: 3\nFOOTBALL_MAJOR_LEAGUES: [39, 2]\nCORS_ALLOWED_ORIGINS: https://a.example.com,https://b.example.com\n")
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	t.Setenv(FileEnvKey, path)
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("FOOTBALL_FEATURED_LIMIT", "8")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.HTTPAddr != ":9090" {
		t.Fatalf("expected file value for APP_HTTP_ADDR, got %q", cfg.HTTPAddr)
	}
	if cfg.FeaturedLimit != 8 {
		t.Fatalf("expected env to override file, got %d", cfg.FeaturedLimit)
	}
	if len(cfg.MajorLeagueIDs) != 2 || cfg.MajorLeagueIDs[1] != 2 {
		t.Fatalf("expected YAML list to be read, got %v", cfg.MajorLeagueIDs)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Fatalf("expected 2 CORS origins, got %v", cfg.CORSOrigins)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	t.Setenv(FileEnvKey, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("APP_ENV", EnvDev)

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func TestParseUptraceDSNFromOTLPHeaders(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "", want: ""},
		{in: "uptrace-dsn=https://x@api.uptrace.dev", want: "https://x@api.uptrace.dev"},
		{in: "a=b, Uptrace-DSN='https://y@host'", want: "https://y@host"},
		{in: "broken", want: ""},
	}
	for _, tt := range tests {
		if got := parseUptraceDSNFromOTLPHeaders(tt.in); got != tt.want {
			t.Fatalf("parseUptraceDSNFromOTLPHeaders(%q)=%q want=%q", tt.in, got, tt.want)
		}
	}
}
