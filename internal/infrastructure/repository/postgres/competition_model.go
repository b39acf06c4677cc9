package postgres

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
)

var competitionColumns = []string{
	"id", "name", "slug", "logo", "country", "type", "season",
	"is_active", "external_id", "created_at", "updated_at",
}

type competitionTableModel struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	Slug       string    `db:"slug"`
	Logo       string    `db:"logo"`
	Country    string    `db:"country"`
	Type       string    `db:"type"`
	Season     string    `db:"season"`
	IsActive   bool      `db:"is_active"`
	ExternalID *int64    `db:"external_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

func newCompetitionTableModel(c competition.Competition) competitionTableModel {
	return competitionTableModel{
		ID:         c.ID,
		Name:       c.Name,
		Slug:       c.Slug,
		Logo:       c.Logo,
		Country:    c.Country,
		Type:       string(c.Type),
		Season:     c.Season,
		IsActive:   c.IsActive,
		ExternalID: nullableInt64(c.ExternalID),
		CreatedAt:  c.CreatedAt.UTC(),
		UpdatedAt:  c.UpdatedAt.UTC(),
	}
}

func (m competitionTableModel) toDomain() competition.Competition {
	return competition.Competition{
		ID:         m.ID,
		Name:       m.Name,
		Slug:       m.Slug,
		Logo:       m.Logo,
		Country:    m.Country,
		Type:       competition.Type(m.Type),
		Season:     m.Season,
		IsActive:   m.IsActive,
		ExternalID: int64Value(m.ExternalID),
		CreatedAt:  m.CreatedAt,
		UpdatedAt:  m.UpdatedAt,
	}
}
