package feed

import (
	"reflect"
	"testing"
	"time"

	"github.com/bytedance/sonic"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/match"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/domain/upstream"
)

func intPtr(v int) *int { return &v }

func TestMapStatus(t *testing.T) {
	cases := map[string]match.Status{
		"NS":   match.StatusScheduled,
		"TBD":  match.StatusScheduled,
		"PST":  match.StatusScheduled,
		"1H":   match.StatusLive,
		"2H":   match.StatusLive,
		"ET":   match.StatusLive,
		"BT":   match.StatusLive,
		"P":    match.StatusLive,
		"HT":   match.StatusHalftime,
		"FT":   match.StatusFinished,
		"AET":  match.StatusFinished,
		"PEN":  match.StatusFinished,
		"CANC": match.StatusCancelled,
		"SUSP": match.StatusPostponed,
		"ft":   match.StatusFinished,
		"":     match.StatusScheduled,
		"XYZ":  match.StatusScheduled,
	}
	for code, want := range cases {
		if got := MapStatus(code); got != want {
			t.Fatalf("MapStatus(%q) = %s, want %s", code, got, want)
		}
	}
}

func TestMapStatus_AlwaysInVocabulary(t *testing.T) {
	for _, code := range []string{"NS", "1H", "HT", "FT", "??", "live", " 2H ", "ABD", "AWD"} {
		if !MapStatus(code).Valid() {
			t.Fatalf("MapStatus(%q) produced a status outside the vocabulary", code)
		}
	}
}

func TestNormalizer_Fixture(t *testing.T) {
	madrid, err := time.LoadLocation("Europe/Madrid")
	if err != nil {
		t.Skipf("timezone data unavailable: %v", err)
	}

	f := upstream.Fixture{
		Fixture: upstream.FixtureInfo{
			ID:     1035037,
			Date:   "2026-03-01T20:00:00+00:00",
			Venue:  upstream.Venue{Name: "Emirates Stadium"},
			Status: upstream.FixtureStatus{Short: "2H", Elapsed: intPtr(67)},
		},
		League: upstream.FixtureLeague{
			ID: 39, Name: "Premier League", Country: "England", Logo: "pl.png",
			Season: intPtr(2025), Round: "Regular Season - 28",
		},
		Teams: upstream.FixtureTeams{
			Home: upstream.TeamRef{ID: 42, Name: "Arsenal", Logo: "ars.png"},
			Away: upstream.TeamRef{ID: 49, Name: "Chelsea", Logo: "che.png"},
		},
		Goals: upstream.Goals{Home: intPtr(2), Away: intPtr(1)},
	}

	got := NewNormalizer(madrid).Fixture(f)

	want := Match{
		ID:        "1035037",
		HomeTeam:  TeamSummary{ID: "42", Name: "Arsenal", Logo: "ars.png", Country: "England"},
		AwayTeam:  TeamSummary{ID: "49", Name: "Chelsea", Logo: "che.png", Country: "England"},
		Date:      "2026-03-01",
		Time:      "21:00",
		Status:    match.StatusLive,
		Elapsed:   intPtr(67),
		HomeScore: intPtr(2),
		AwayScore: intPtr(1),
		Competition: CompetitionSummary{
			ID: "39", Name: "Premier League", Logo: "pl.png", Country: "England", Season: "2025",
		},
		Venue:     "Emirates Stadium",
		Round:     "Regular Season - 28",
		Kickoff:   time.Date(2026, 3, 1, 20, 0, 0, 0, time.UTC),
		LeagueRef: 39,
	}
	if !got.Kickoff.Equal(want.Kickoff) {
		t.Fatalf("unexpected kickoff %v", got.Kickoff)
	}
	got.Kickoff = want.Kickoff
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected match:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestNormalizer_FixtureMissingOptionalFields(t *testing.T) {
	got := NewNormalizer(nil).Fixture(upstream.Fixture{
		Fixture: upstream.FixtureInfo{ID: 7, Date: "not-a-date"},
	})

	if got.ID != "7" || got.Date != "not-a-date" || got.Time != "" {
		t.Fatalf("unexpected tolerant output: %+v", got)
	}
	if got.HomeScore != nil || got.AwayScore != nil {
		t.Fatalf("expected nil scores for unplayed fixture")
	}
	if got.Status != match.StatusScheduled {
		t.Fatalf("expected scheduled for empty status, got %s", got.Status)
	}
	if got.Competition.Season != "" {
		t.Fatalf("expected empty season without league season or kickoff, got %q", got.Competition.Season)
	}
}

func TestNormalizer_FixtureSeasonFallsBackToKickoffYear(t *testing.T) {
	got := NewNormalizer(time.UTC).Fixture(upstream.Fixture{
		Fixture: upstream.FixtureInfo{ID: 1, Date: "2026-08-15T14:00:00+00:00"},
		League:  upstream.FixtureLeague{ID: 140},
	})
	if got.Competition.Season != "2026" {
		t.Fatalf("expected kickoff year season, got %q", got.Competition.Season)
	}
}

func TestNormalizer_FixtureFromProviderJSON(t *testing.T) {
	raw := `{"fixture":{"id":99,"date":"2026-03-02T18:30:00+00:00","status":{"short":"HT","elapsed":45},"venue":{"id":null,"name":"Anfield","city":"Liverpool"}},
	"league":{"id":39,"name":"Premier League","country":"England","logo":"l","season":2025,"round":"R1"},
	"teams":{"home":{"id":40,"name":"Liverpool","logo":"liv","winner":null},"away":{"id":50,"name":"Manchester City","logo":"mci","winner":null}},
	"goals":{"home":0,"away":null}}`

	var f upstream.Fixture
	if err := sonic.UnmarshalString(raw, &f); err != nil {
		t.Fatalf("decode fixture: %v", err)
	}

	got := NewNormalizer(time.UTC).Fixture(f)
	if got.Status != match.StatusHalftime || got.Time != "18:30" || got.Venue != "Anfield" {
		t.Fatalf("unexpected match %+v", got)
	}
	if got.HomeScore == nil || *got.HomeScore != 0 || got.AwayScore != nil {
		t.Fatalf("expected home 0 and away nil, got %v %v", got.HomeScore, got.AwayScore)
	}
}

func TestNormalizer_League(t *testing.T) {
	got := NewNormalizer(nil).League(upstream.LeagueEntry{
		League:  upstream.LeagueInfo{ID: 140, Name: "La Liga", Type: "League", Logo: "ll.png"},
		Country: upstream.Country{Name: "Spain", Flag: "es.svg"},
		Seasons: []upstream.Season{{Year: 2024}, {Year: 2025, Current: true}},
	})

	want := Competition{
		ID: "140", Name: "La Liga", Logo: "ll.png", Country: "Spain", CountryFlag: "es.svg",
		Type: "league", Season: "2025", IsActive: true,
	}
	if got != want {
		t.Fatalf("unexpected competition:\nwant %+v\ngot  %+v", want, got)
	}
}

func TestNormalizer_LeagueWithoutSeasons(t *testing.T) {
	got := NewNormalizer(nil).League(upstream.LeagueEntry{League: upstream.LeagueInfo{ID: 1, Name: "Cup", Type: "Cup"}})
	if got.Season != "" || got.IsActive {
		t.Fatalf("expected empty season and inactive, got %+v", got)
	}
}

func TestNormalizer_Standings(t *testing.T) {
	entries := []upstream.StandingsEntry{{
		League: upstream.StandingsLeague{
			ID: 39, Name: "Premier League", Country: "England", Logo: "pl.png", Season: 2025,
			Standings: [][]upstream.StandingRow{{
				{
					Rank: 1, Team: upstream.TeamRef{ID: 42, Name: "Arsenal", Logo: "ars.png"},
					Points: 61, GoalsDiff: 35, Form: "WWDLW",
					All: upstream.RecordSplit{Played: 27, Win: 19, Draw: 4, Lose: 4, Goals: upstream.GoalTotals{For: 55, Against: 20}},
				},
				{Rank: 2, Team: upstream.TeamRef{ID: 50, Name: "Manchester City"}, Points: 58},
			}},
		},
	}}

	table := NewNormalizer(nil).Standings(entries)

	if table.Competition == nil || table.Competition.Season != "2025" || table.Competition.ID != "39" {
		t.Fatalf("unexpected competition %+v", table.Competition)
	}
	if len(table.Standings) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Standings))
	}
	first := table.Standings[0]
	if first.Position != 1 || first.Won != 19 || first.Drawn != 4 || first.Lost != 4 ||
		first.GoalsFor != 55 || first.GoalsAgainst != 20 || first.GoalDifference != 35 || first.Points != 61 {
		t.Fatalf("unexpected first row %+v", first)
	}
	if !reflect.DeepEqual(first.Form, []string{"W", "W", "D", "L", "W"}) {
		t.Fatalf("unexpected form %v", first.Form)
	}
	if table.Standings[1].Form == nil || len(table.Standings[1].Form) != 0 {
		t.Fatalf("expected empty non-nil form for missing form string")
	}
}

func TestNormalizer_StandingsEmpty(t *testing.T) {
	table := NewNormalizer(nil).Standings(nil)
	if table.Competition != nil {
		t.Fatalf("expected nil competition")
	}
	if table.Standings == nil || len(table.Standings) != 0 {
		t.Fatalf("expected empty non-nil standings")
	}
}

func TestNormalizer_TopScorersKeepsOrderAndLimit(t *testing.T) {
	entries := make([]upstream.ScorerEntry, 0, 12)
	for i := 1; i <= 12; i++ {
		entries = append(entries, upstream.ScorerEntry{
			Player: upstream.PlayerInfo{ID: int64(i), Name: "Player"},
			Statistics: []upstream.PlayerStatistics{{
				Team:  upstream.TeamRef{ID: 1, Name: "Team"},
				Goals: upstream.ScorerGoals{Total: intPtr(30 - i)},
				Games: upstream.GameStats{Appearences: intPtr(25)},
			}},
		})
	}

	got := NewNormalizer(nil).TopScorers(entries, 10)

	if len(got) != 10 {
		t.Fatalf("expected 10 scorers, got %d", len(got))
	}
	if got[0].Player.ID != "1" || got[9].Player.ID != "10" {
		t.Fatalf("expected provider order preserved, got first=%s last=%s", got[0].Player.ID, got[9].Player.ID)
	}
	if got[0].Assists != 0 || got[0].Matches != 25 || got[0].Goals != 29 {
		t.Fatalf("unexpected first scorer %+v", got[0])
	}
}

func TestNormalizer_TopScorersWithoutStatistics(t *testing.T) {
	got := NewNormalizer(nil).TopScorers([]upstream.ScorerEntry{{Player: upstream.PlayerInfo{ID: 5, Name: "Solo"}}}, 10)
	if len(got) != 1 || got[0].Goals != 0 || got[0].Team.ID != "" {
		t.Fatalf("unexpected scorer %+v", got)
	}
}

func TestNormalizer_LocalMatch(t *testing.T) {
	kickoff := time.Date(2026, 3, 1, 19, 45, 0, 0, time.UTC)
	m := match.Match{
		ID: "m1", MatchDate: kickoff, Status: match.StatusHalftime,
		HomeTeamID: "t1", AwayTeamID: "t-missing", CompetitionID: "c1",
		HomeScore: intPtr(1), AwayScore: intPtr(1), Venue: "Metropolitano",
	}
	teams := map[string]team.Team{"t1": {ID: "t1", Name: "Atlético Madrid", Country: "Spain"}}
	comps := map[string]competition.Competition{"c1": {ID: "c1", Name: "La Liga", Country: "Spain", Season: "2025", ExternalID: 140}}

	got := NewNormalizer(time.UTC).LocalMatch(m, teams, comps)

	if got.Date != "2026-03-01" || got.Time != "19:45" || got.Status != match.StatusHalftime {
		t.Fatalf("unexpected local match %+v", got)
	}
	if got.HomeTeam.Name != "Atlético Madrid" || got.AwayTeam != (TeamSummary{ID: "t-missing"}) {
		t.Fatalf("unexpected teams %+v %+v", got.HomeTeam, got.AwayTeam)
	}
	if got.LeagueRef != 140 || got.Competition.Season != "2025" {
		t.Fatalf("unexpected competition %+v ref=%d", got.Competition, got.LeagueRef)
	}
}
