package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/team"
)

type TeamRepository struct {
	rows *table[team.Team]
}

func NewTeamRepository(items []team.Team) *TeamRepository {
	rows := newTable(
		func(t team.Team) string { return t.ID },
		func(t team.Team) string { return strings.ToUpper(t.ShortName) },
	)
	rows.seed(items)
	return &TeamRepository{rows: rows}
}

func (r *TeamRepository) List(_ context.Context) ([]team.Team, error) {
	return sortTeams(r.rows.filter(nil)), nil
}

func (r *TeamRepository) GetByID(_ context.Context, id string) (team.Team, bool, error) {
	t, ok := r.rows.get(id)
	return t, ok, nil
}

func (r *TeamRepository) GetByIDs(_ context.Context, ids []string) ([]team.Team, error) {
	out := make([]team.Team, 0, len(ids))
	for _, id := range ids {
		if t, ok := r.rows.get(id); ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *TeamRepository) Search(_ context.Context, query string) ([]team.Team, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	return sortTeams(r.rows.filter(func(t team.Team) bool {
		return strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.ShortName), q) ||
			strings.Contains(strings.ToLower(t.City), q)
	})), nil
}

func (r *TeamRepository) ListByCompetition(_ context.Context, competitionID string) ([]team.Team, error) {
	return sortTeams(r.rows.filter(func(t team.Team) bool {
		return t.CompetitionID == competitionID
	})), nil
}

func (r *TeamRepository) Create(_ context.Context, t team.Team) error {
	return r.rows.insert(t)
}

func (r *TeamRepository) Update(_ context.Context, t team.Team) error {
	return r.rows.update(t)
}

func (r *TeamRepository) Delete(_ context.Context, id string) error {
	return r.rows.delete(id)
}

func sortTeams(items []team.Team) []team.Team {
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items
}
