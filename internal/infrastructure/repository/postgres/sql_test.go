package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"

	"github.com/riskibarqy/football-portal/internal/domain/storage"
)

func TestWriteError(t *testing.T) {
	t.Run("maps unique violation to duplicate", func(t *testing.T) {
		err := writeError("insert team", fmt.Errorf("exec: %w", &pq.Error{Code: "23505"}))
		if !errors.Is(err, storage.ErrDuplicate) {
			t.Fatalf("expected ErrDuplicate, got %v", err)
		}
	})

	t.Run("keeps other driver errors", func(t *testing.T) {
		cause := &pq.Error{Code: "42P01"}
		err := writeError("insert team", cause)
		if errors.Is(err, storage.ErrDuplicate) {
			t.Fatalf("unexpected duplicate mapping for %v", err)
		}
		var pqErr *pq.Error
		if !errors.As(err, &pqErr) {
			t.Fatalf("expected wrapped pq error, got %v", err)
		}
	})
}

func TestRequireAffected(t *testing.T) {
	if err := requireAffected("update team", fakeResult(1)); err != nil {
		t.Fatalf("expected nil for one affected row, got %v", err)
	}
	if err := requireAffected("update team", fakeResult(0)); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNullableHelpers(t *testing.T) {
	if nullableString("") != nil {
		t.Fatalf("empty string should map to NULL")
	}
	if got := stringValue(nullableString("team-1")); got != "team-1" {
		t.Fatalf("unexpected round trip %q", got)
	}
	if nullableInt64(0) != nil {
		t.Fatalf("zero should map to NULL")
	}
	if got := int64Value(nullableInt64(39)); got != 39 {
		t.Fatalf("unexpected round trip %d", got)
	}
}

type fakeResult int64

func (r fakeResult) LastInsertId() (int64, error) { return 0, nil }
func (r fakeResult) RowsAffected() (int64, error) { return int64(r), nil }
