package postgres

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/team"
)

var teamColumns = []string{
	"id", "name", "short_name", "logo", "country", "city", "stadium",
	"founded", "colors", "competition_id", "created_at", "updated_at",
}

type teamTableModel struct {
	ID            string    `db:"id"`
	Name          string    `db:"name"`
	ShortName     string    `db:"short_name"`
	Logo          string    `db:"logo"`
	Country       string    `db:"country"`
	City          string    `db:"city"`
	Stadium       string    `db:"stadium"`
	Founded       int       `db:"founded"`
	Colors        string    `db:"colors"`
	CompetitionID *string   `db:"competition_id"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func newTeamTableModel(t team.Team) teamTableModel {
	return teamTableModel{
		ID:            t.ID,
		Name:          t.Name,
		ShortName:     t.ShortName,
		Logo:          t.Logo,
		Country:       t.Country,
		City:          t.City,
		Stadium:       t.Stadium,
		Founded:       t.Founded,
		Colors:        t.Colors,
		CompetitionID: nullableString(t.CompetitionID),
		CreatedAt:     t.CreatedAt.UTC(),
		UpdatedAt:     t.UpdatedAt.UTC(),
	}
}

func (m teamTableModel) toDomain() team.Team {
	return team.Team{
		ID:            m.ID,
		Name:          m.Name,
		ShortName:     m.ShortName,
		Logo:          m.Logo,
		Country:       m.Country,
		City:          m.City,
		Stadium:       m.Stadium,
		Founded:       m.Founded,
		Colors:        m.Colors,
		CompetitionID: stringValue(m.CompetitionID),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
