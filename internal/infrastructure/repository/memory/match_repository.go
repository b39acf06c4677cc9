package memory

import (
	"context"
	"slices"
	"sort"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/match"
)

type MatchRepository struct {
	rows *table[match.Match]
}

func NewMatchRepository(items []match.Match) *MatchRepository {
	rows := newTable(func(m match.Match) string { return m.ID })
	rows.seed(items)
	return &MatchRepository{rows: rows}
}

func (r *MatchRepository) List(_ context.Context) ([]match.Match, error) {
	return newestFirst(r.rows.filter(nil)), nil
}

func (r *MatchRepository) GetByID(_ context.Context, id string) (match.Match, bool, error) {
	m, ok := r.rows.get(id)
	return m, ok, nil
}

func (r *MatchRepository) ListBetween(_ context.Context, from, to time.Time) ([]match.Match, error) {
	out := r.rows.filter(func(m match.Match) bool {
		return !m.MatchDate.Before(from) && m.MatchDate.Before(to)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].MatchDate.Before(out[j].MatchDate) })
	return out, nil
}

func (r *MatchRepository) ListByStatus(_ context.Context, statuses ...match.Status) ([]match.Match, error) {
	out := r.rows.filter(func(m match.Match) bool {
		return slices.Contains(statuses, m.Status)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].MatchDate.Before(out[j].MatchDate) })
	return out, nil
}

func (r *MatchRepository) ListByTeam(_ context.Context, teamID string) ([]match.Match, error) {
	return newestFirst(r.rows.filter(func(m match.Match) bool { return m.Involves(teamID) })), nil
}

func (r *MatchRepository) Create(_ context.Context, m match.Match) error {
	return r.rows.insert(m)
}

func (r *MatchRepository) Update(_ context.Context, m match.Match) error {
	return r.rows.update(m)
}

func (r *MatchRepository) Delete(_ context.Context, id string) error {
	return r.rows.delete(id)
}

func newestFirst(items []match.Match) []match.Match {
	sort.Slice(items, func(i, j int) bool { return items[i].MatchDate.After(items[j].MatchDate) })
	return items
}
