package match

import (
	"testing"
	"time"
)

func TestMatchValidate(t *testing.T) {
	valid := Match{
		ID:            "m1",
		MatchDate:     time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
		Status:        StatusScheduled,
		HomeTeamID:    "t1",
		AwayTeamID:    "t2",
		CompetitionID: "c1",
	}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid match, got %v", err)
	}

	same := valid
	same.AwayTeamID = "t1"
	if err := same.Validate(); err == nil {
		t.Fatalf("expected error for identical teams")
	}

	badStatus := valid
	badStatus.Status = "abandoned"
	if err := badStatus.Validate(); err == nil {
		t.Fatalf("expected error for unknown status")
	}

	negative := valid
	score := -1
	negative.HomeScore = &score
	if err := negative.Validate(); err == nil {
		t.Fatalf("expected error for negative score")
	}
}

func TestPatchApplyCopiesScores(t *testing.T) {
	m := Match{ID: "m1"}
	home, away := 2, 1
	status := StatusFinished
	Patch{HomeScore: &home, AwayScore: &away, Status: &status}.Apply(&m)

	home = 9
	if m.HomeScore == nil || *m.HomeScore != 2 || *m.AwayScore != 1 {
		t.Fatalf("unexpected scores after patch: %+v", m)
	}
	if m.Status != StatusFinished {
		t.Fatalf("expected finished status, got %s", m.Status)
	}
}

func TestStatusInPlay(t *testing.T) {
	if !StatusLive.InPlay() || !StatusHalftime.InPlay() {
		t.Fatalf("live and halftime are in play")
	}
	if StatusFinished.InPlay() || StatusScheduled.InPlay() {
		t.Fatalf("finished and scheduled are not in play")
	}
}
