package feed

import (
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/upstream"
)

// Normalizer renders provider records. It never fails: absent optional
// fields become zero values.
type Normalizer struct {
	loc *time.Location
}

// NewNormalizer renders kickoff clock times in loc (UTC when nil).
func NewNormalizer(loc *time.Location) Normalizer {
	if loc == nil {
		loc = time.UTC
	}
	return Normalizer{loc: loc}
}

func (n Normalizer) Location() *time.Location {
	if n.loc == nil {
		return time.UTC
	}
	return n.loc
}

func (n Normalizer) Fixtures(fixtures []upstream.Fixture) []Match {
	out := make([]Match, 0, len(fixtures))
	for _, f := range fixtures {
		out = append(out, n.Fixture(f))
	}
	return out
}

func (n Normalizer) Fixture(f upstream.Fixture) Match {
	kickoff := parseKickoff(f.Fixture.Date, f.Fixture.Timestamp)
	clock := ""
	if !kickoff.IsZero() {
		clock = kickoff.In(n.Location()).Format("15:04")
	}

	season := ""
	switch {
	case f.League.Season != nil:
		season = strconv.Itoa(*f.League.Season)
	case !kickoff.IsZero():
		season = strconv.Itoa(kickoff.UTC().Year())
	}

	return Match{
		ID:        formatID(f.Fixture.ID),
		HomeTeam:  teamSummary(f.Teams.Home, f.League.Country),
		AwayTeam:  teamSummary(f.Teams.Away, f.League.Country),
		Date:      datePart(f.Fixture.Date),
		Time:      clock,
		Status:    MapStatus(f.Fixture.Status.Short),
		Elapsed:   copyInt(f.Fixture.Status.Elapsed),
		HomeScore: copyInt(f.Goals.Home),
		AwayScore: copyInt(f.Goals.Away),
		Competition: CompetitionSummary{
			ID:      formatID(f.League.ID),
			Name:    f.League.Name,
			Logo:    f.League.Logo,
			Country: f.League.Country,
			Season:  season,
		},
		Venue:     f.Fixture.Venue.Name,
		Round:     f.League.Round,
		Kickoff:   kickoff,
		LeagueRef: f.League.ID,
	}
}

func (n Normalizer) Leagues(entries []upstream.LeagueEntry) []Competition {
	out := make([]Competition, 0, len(entries))
	for _, e := range entries {
		out = append(out, n.League(e))
	}
	return out
}

// League picks the season flagged current, else the first listed.
func (n Normalizer) League(e upstream.LeagueEntry) Competition {
	c := Competition{
		ID:          formatID(e.League.ID),
		Name:        e.League.Name,
		Logo:        e.League.Logo,
		Country:     e.Country.Name,
		CountryFlag: e.Country.Flag,
		Type:        strings.ToLower(e.League.Type),
	}
	if len(e.Seasons) == 0 {
		return c
	}
	season := e.Seasons[0]
	for _, s := range e.Seasons {
		if s.Current {
			season = s
			break
		}
	}
	if season.Year > 0 {
		c.Season = strconv.Itoa(season.Year)
	}
	c.IsActive = season.Current
	return c
}

// Standings uses the first group of the first table. An empty payload gives
// a nil competition and an empty, non-nil row slice.
func (n Normalizer) Standings(entries []upstream.StandingsEntry) StandingsTable {
	table := StandingsTable{Standings: []StandingRow{}}
	if len(entries) == 0 {
		return table
	}

	league := entries[0].League
	table.Competition = &CompetitionSummary{
		ID:      formatID(league.ID),
		Name:    league.Name,
		Logo:    league.Logo,
		Country: league.Country,
	}
	if league.Season > 0 {
		table.Competition.Season = strconv.Itoa(league.Season)
	}
	if len(league.Standings) == 0 {
		return table
	}

	rows := league.Standings[0]
	table.Standings = make([]StandingRow, 0, len(rows))
	for _, r := range rows {
		table.Standings = append(table.Standings, StandingRow{
			Position:       r.Rank,
			Team:           teamRef(r.Team),
			Played:         r.All.Played,
			Won:            r.All.Win,
			Drawn:          r.All.Draw,
			Lost:           r.All.Lose,
			GoalsFor:       r.All.Goals.For,
			GoalsAgainst:   r.All.Goals.Against,
			GoalDifference: r.GoalsDiff,
			Points:         r.Points,
			Form:           splitForm(r.Form),
		})
	}
	return table
}

// TopScorers keeps provider order and returns at most limit entries.
func (n Normalizer) TopScorers(entries []upstream.ScorerEntry, limit int) []Scorer {
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	out := make([]Scorer, 0, len(entries))
	for _, e := range entries {
		s := Scorer{
			Player: PlayerSummary{
				ID:          formatID(e.Player.ID),
				Name:        e.Player.Name,
				Photo:       e.Player.Photo,
				Nationality: e.Player.Nationality,
			},
		}
		if len(e.Statistics) > 0 {
			stats := e.Statistics[0]
			s.Team = teamRef(stats.Team)
			s.Goals = derefInt(stats.Goals.Total)
			s.Assists = derefInt(stats.Goals.Assists)
			s.Matches = derefInt(stats.Games.Appearences)
		}
		out = append(out, s)
	}
	return out
}

func parseKickoff(raw string, unix int64) time.Time {
	if raw != "" {
		if t, err := time.Parse(time.RFC3339, raw); err == nil {
			return t
		}
	}
	if unix > 0 {
		return time.Unix(unix, 0).UTC()
	}
	return time.Time{}
}

func datePart(raw string) string {
	date, _, _ := strings.Cut(raw, "T")
	return date
}

func teamSummary(t upstream.TeamRef, country string) TeamSummary {
	return TeamSummary{
		ID:      formatID(t.ID),
		Name:    t.Name,
		Logo:    t.Logo,
		Country: country,
	}
}

func teamRef(t upstream.TeamRef) TeamRef {
	return TeamRef{ID: formatID(t.ID), Name: t.Name, Logo: t.Logo}
}

func splitForm(form string) []string {
	out := make([]string, 0, len(form))
	for _, r := range form {
		out = append(out, string(r))
	}
	return out
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}

func copyInt(v *int) *int {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}

func derefInt(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
