package postgres

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/player"
)

var playerColumns = []string{
	"id", "name", "first_name", "last_name", "photo", "date_of_birth",
	"nationality", "position", "number", "market_value", "height", "weight",
	"preferred_foot", "team_id", "created_at", "updated_at",
}

type playerTableModel struct {
	ID            string     `db:"id"`
	Name          string     `db:"name"`
	FirstName     string     `db:"first_name"`
	LastName      string     `db:"last_name"`
	Photo         string     `db:"photo"`
	DateOfBirth   *time.Time `db:"date_of_birth"`
	Nationality   string     `db:"nationality"`
	Position      string     `db:"position"`
	Number        int        `db:"number"`
	MarketValue   int64      `db:"market_value"`
	Height        int        `db:"height"`
	Weight        int        `db:"weight"`
	PreferredFoot string     `db:"preferred_foot"`
	TeamID        *string    `db:"team_id"`
	CreatedAt     time.Time  `db:"created_at"`
	UpdatedAt     time.Time  `db:"updated_at"`
}

func newPlayerTableModel(p player.Player) playerTableModel {
	return playerTableModel{
		ID:            p.ID,
		Name:          p.Name,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Photo:         p.Photo,
		DateOfBirth:   copyTime(p.DateOfBirth),
		Nationality:   p.Nationality,
		Position:      string(p.Position),
		Number:        p.Number,
		MarketValue:   p.MarketValue,
		Height:        p.Height,
		Weight:        p.Weight,
		PreferredFoot: string(p.PreferredFoot),
		TeamID:        nullableString(p.TeamID),
		CreatedAt:     p.CreatedAt.UTC(),
		UpdatedAt:     p.UpdatedAt.UTC(),
	}
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:            m.ID,
		Name:          m.Name,
		FirstName:     m.FirstName,
		LastName:      m.LastName,
		Photo:         m.Photo,
		DateOfBirth:   copyTime(m.DateOfBirth),
		Nationality:   m.Nationality,
		Position:      player.Position(m.Position),
		Number:        m.Number,
		MarketValue:   m.MarketValue,
		Height:        m.Height,
		Weight:        m.Weight,
		PreferredFoot: player.Foot(m.PreferredFoot),
		TeamID:        stringValue(m.TeamID),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}
