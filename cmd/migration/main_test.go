package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riskibarqy/football-portal/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	if got, err := parseSteps(nil); err != nil || got != 1 {
		t.Fatalf("expected default of 1 step, got %d err=%v", got, err)
	}
	if got, err := parseSteps([]string{" 3 "}); err != nil || got != 3 {
		t.Fatalf("expected 3 steps, got %d err=%v", got, err)
	}
	for _, raw := range []string{"0", "-2", "abc"} {
		if _, err := parseSteps([]string{raw}); err == nil {
			t.Fatalf("expected error for steps %q", raw)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("1771776034"); err != nil || v != 1771776034 {
		t.Fatalf("unexpected version %d err=%v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected negative version to fail")
	}
	if _, err := parseTarget("-1"); err == nil {
		t.Fatalf("expected negative target to fail")
	}
}

func TestPoolerSafeURL(t *testing.T) {
	raw := "postgres://u:p@localhost:5432/football_portal?sslmode=disable"
	if got := poolerSafeURL(raw, false); got != raw {
		t.Fatalf("expected url unchanged, got %q", got)
	}
	if got := poolerSafeURL(raw, true); !strings.Contains(got, "binary_parameters=yes") {
		t.Fatalf("expected binary_parameters=yes, got %q", got)
	}
}

func TestResolveMigrationsDir(t *testing.T) {
	dir := t.TempDir()
	got, err := resolveMigrationsDir(dir)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	want, _ := filepath.Abs(dir)
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}

	missing := filepath.Join(dir, "missing")
	wd, _ := os.Getwd()
	if _, statErr := os.Stat(filepath.Join(wd, "db", "migrations")); statErr != nil {
		if _, err := resolveMigrationsDir(missing); err == nil {
			t.Fatalf("expected error for missing directory")
		}
	}
}

func TestRun_Usage(t *testing.T) {
	if err := run(nil, logging.NewNop()); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestRun_RequiresDBURL(t *testing.T) {
	t.Setenv("DB_URL", "")
	err := run([]string{"up"}, logging.NewNop())
	if err == nil || !strings.Contains(err.Error(), "DB_URL") {
		t.Fatalf("expected DB_URL error, got %v", err)
	}
}
