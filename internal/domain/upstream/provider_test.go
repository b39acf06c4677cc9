package upstream

import (
	"errors"
	"fmt"
	"testing"
)

func TestFixtureQueryValues(t *testing.T) {
	cases := []struct {
		name string
		q    FixtureQuery
		want string
	}{
		{name: "live all", q: FixtureQuery{Live: true}, want: "live=all"},
		{name: "live leagues", q: FixtureQuery{Live: true, LeagueIDs: []int64{39, 140}}, want: "live=39-140"},
		{name: "date", q: FixtureQuery{Date: "2026-03-01"}, want: "date=2026-03-01"},
		{name: "range with league", q: FixtureQuery{From: "2026-03-01", To: "2026-03-03", LeagueIDs: []int64{39}, Season: 2025}, want: "from=2026-03-01&league=39&season=2025&to=2026-03-03"},
	}

	for _, tc := range cases {
		if got := tc.q.Values().Encode(); got != tc.want {
			t.Fatalf("%s: got %q want %q", tc.name, got, tc.want)
		}
	}
}

func TestLeagueQueryValues(t *testing.T) {
	q := LeagueQuery{Country: "Spain", Current: true, Type: "league"}
	if got := q.Values().Encode(); got != "country=Spain&current=true&type=league" {
		t.Fatalf("unexpected league query %q", got)
	}
}

func TestStatusErrorMatchesUnavailable(t *testing.T) {
	err := fmt.Errorf("fetch fixtures: %w", &StatusError{Endpoint: "/fixtures", Status: 500, Body: "oops"})
	if !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected status error to match ErrUnavailable")
	}

	var statusErr *StatusError
	if !errors.As(err, &statusErr) || statusErr.Status != 500 {
		t.Fatalf("expected to unwrap status error, got %v", err)
	}
	if !statusErr.Retryable() {
		t.Fatalf("expected 500 to be retryable")
	}
}

func TestUnavailableWrapsCause(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := Unavailable(cause, "call %s", "/fixtures")
	if !IsUnavailable(err) {
		t.Fatalf("expected unavailable marker")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be preserved")
	}
	if IsUnavailable(errors.New("decode failure")) {
		t.Fatalf("plain errors must not be unavailable")
	}
}
