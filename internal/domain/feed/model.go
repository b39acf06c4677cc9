// Package feed holds the portal's normalized football read models and the
// pure transforms that produce them from provider records or local rows.
package feed

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/match"
)

// Source tells clients where a feed result came from.
type Source string

const (
	SourceExternal    Source = "external"
	SourceLocal       Source = "local"
	SourceUnavailable Source = "unavailable"
)

// Result pairs data with its provenance. Message explains fallbacks and
// truncation and is empty otherwise.
type Result[T any] struct {
	Data    T
	Source  Source
	Message string
}

type TeamSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Country string `json:"country"`
}

type CompetitionSummary struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Logo    string `json:"logo"`
	Country string `json:"country"`
	Season  string `json:"season"`
}

type Match struct {
	ID          string             `json:"id"`
	HomeTeam    TeamSummary        `json:"homeTeam"`
	AwayTeam    TeamSummary        `json:"awayTeam"`
	Date        string             `json:"date"`
	Time        string             `json:"time"`
	Status      match.Status       `json:"status"`
	Elapsed     *int               `json:"elapsed,omitempty"`
	HomeScore   *int               `json:"homeScore"`
	AwayScore   *int               `json:"awayScore"`
	Competition CompetitionSummary `json:"competition"`
	Venue       string             `json:"venue,omitempty"`
	Round       string             `json:"round,omitempty"`

	// Kickoff is zero when the provider date could not be parsed.
	Kickoff time.Time `json:"-"`
	// LeagueRef is the provider league id, 0 when unknown.
	LeagueRef int64 `json:"-"`
}

type Competition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Country     string `json:"country"`
	CountryFlag string `json:"countryFlag,omitempty"`
	Type        string `json:"type"`
	Season      string `json:"season"`
	IsActive    bool   `json:"isActive"`
}

type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Logo string `json:"logo"`
}

type StandingRow struct {
	Position       int      `json:"position"`
	Team           TeamRef  `json:"team"`
	Played         int      `json:"played"`
	Won            int      `json:"won"`
	Drawn          int      `json:"drawn"`
	Lost           int      `json:"lost"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	Points         int      `json:"points"`
	Form           []string `json:"form"`
}

type StandingsTable struct {
	Competition *CompetitionSummary `json:"competition"`
	Standings   []StandingRow       `json:"standings"`
}

type PlayerSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Photo       string `json:"photo"`
	Nationality string `json:"nationality"`
}

type Scorer struct {
	Player  PlayerSummary `json:"player"`
	Team    TeamRef       `json:"team"`
	Goals   int           `json:"goals"`
	Assists int           `json:"assists"`
	Matches int           `json:"matches"`
}

// Overview bundles a competition with its table and scoring chart.
type Overview struct {
	Competition *Competition   `json:"competition"`
	Standings   StandingsTable `json:"standings"`
	TopScorers  []Scorer       `json:"topScorers"`
}

// ProviderStatus reports provider reachability for diagnostics.
type ProviderStatus struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}
