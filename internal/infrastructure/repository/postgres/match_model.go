package postgres

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/match"
)

var matchColumns = []string{
	"id", "match_date", "home_score", "away_score", "status", "round", "venue",
	"home_team_id", "away_team_id", "competition_id", "created_at", "updated_at",
}

type matchTableModel struct {
	ID            string    `db:"id"`
	MatchDate     time.Time `db:"match_date"`
	HomeScore     *int      `db:"home_score"`
	AwayScore     *int      `db:"away_score"`
	Status        string    `db:"status"`
	Round         string    `db:"round"`
	Venue         string    `db:"venue"`
	HomeTeamID    string    `db:"home_team_id"`
	AwayTeamID    string    `db:"away_team_id"`
	CompetitionID string    `db:"competition_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func newMatchTableModel(m match.Match) matchTableModel {
	return matchTableModel{
		ID:            m.ID,
		MatchDate:     m.MatchDate.UTC(),
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Status:        string(m.Status),
		Round:         m.Round,
		Venue:         m.Venue,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		CompetitionID: m.CompetitionID,
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}
}

func (m matchTableModel) toDomain() match.Match {
	return match.Match{
		ID:            m.ID,
		MatchDate:     m.MatchDate.UTC(),
		HomeScore:     m.HomeScore,
		AwayScore:     m.AwayScore,
		Status:        match.Status(m.Status),
		Round:         m.Round,
		Venue:         m.Venue,
		HomeTeamID:    m.HomeTeamID,
		AwayTeamID:    m.AwayTeamID,
		CompetitionID: m.CompetitionID,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
