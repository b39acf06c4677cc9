package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/player"
)

type PlayerRepository struct {
	rows *table[player.Player]
}

func NewPlayerRepository(items []player.Player) *PlayerRepository {
	rows := newTable(func(p player.Player) string { return p.ID })
	rows.seed(items)
	return &PlayerRepository{rows: rows}
}

func (r *PlayerRepository) List(_ context.Context) ([]player.Player, error) {
	return sortPlayers(r.rows.filter(nil)), nil
}

func (r *PlayerRepository) GetByID(_ context.Context, id string) (player.Player, bool, error) {
	p, ok := r.rows.get(id)
	return p, ok, nil
}

func (r *PlayerRepository) Search(_ context.Context, query string) ([]player.Player, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	return sortPlayers(r.rows.filter(func(p player.Player) bool {
		return strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Nationality), q)
	})), nil
}

func (r *PlayerRepository) ListByTeam(_ context.Context, teamID string) ([]player.Player, error) {
	out := r.rows.filter(func(p player.Player) bool { return p.TeamID == teamID })
	sort.Slice(out, func(i, j int) bool {
		if out[i].Number != out[j].Number {
			return out[i].Number < out[j].Number
		}
		return out[i].Name < out[j].Name
	})
	return out, nil
}

func (r *PlayerRepository) TopByMarketValue(_ context.Context, limit int) ([]player.Player, error) {
	out := r.rows.filter(nil)
	sort.Slice(out, func(i, j int) bool {
		if out[i].MarketValue != out[j].MarketValue {
			return out[i].MarketValue > out[j].MarketValue
		}
		return out[i].Name < out[j].Name
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *PlayerRepository) Create(_ context.Context, p player.Player) error {
	return r.rows.insert(p)
}

func (r *PlayerRepository) Update(_ context.Context, p player.Player) error {
	return r.rows.update(p)
}

func (r *PlayerRepository) Delete(_ context.Context, id string) error {
	return r.rows.delete(id)
}

func sortPlayers(items []player.Player) []player.Player {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
