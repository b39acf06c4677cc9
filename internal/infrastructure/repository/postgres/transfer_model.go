package postgres

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/transfer"
)

var transferColumns = []string{
	"id", "player_id", "from_team_id", "to_team_id", "transfer_date",
	"fee", "type", "season", "notes", "created_at", "updated_at",
}

type transferTableModel struct {
	ID           string    `db:"id"`
	PlayerID     string    `db:"player_id"`
	FromTeamID   *string   `db:"from_team_id"`
	ToTeamID     string    `db:"to_team_id"`
	TransferDate time.Time `db:"transfer_date"`
	Fee          int64     `db:"fee"`
	Type         string    `db:"type"`
	Season       string    `db:"season"`
	Notes        string    `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func newTransferTableModel(t transfer.Transfer) transferTableModel {
	return transferTableModel{
		ID:           t.ID,
		PlayerID:     t.PlayerID,
		FromTeamID:   nullableString(t.FromTeamID),
		ToTeamID:     t.ToTeamID,
		TransferDate: t.TransferDate.UTC(),
		Fee:          t.Fee,
		Type:         string(t.Type),
		Season:       t.Season,
		Notes:        t.Notes,
		CreatedAt:    t.CreatedAt.UTC(),
		UpdatedAt:    t.UpdatedAt.UTC(),
	}
}

func (m transferTableModel) toDomain() transfer.Transfer {
	return transfer.Transfer{
		ID:           m.ID,
		PlayerID:     m.PlayerID,
		FromTeamID:   stringValue(m.FromTeamID),
		ToTeamID:     m.ToTeamID,
		TransferDate: m.TransferDate.UTC(),
		Fee:          m.Fee,
		Type:         transfer.Type(m.Type),
		Season:       m.Season,
		Notes:        m.Notes,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
