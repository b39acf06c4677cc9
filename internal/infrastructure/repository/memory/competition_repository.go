package memory

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
)

type CompetitionRepository struct {
	rows *table[competition.Competition]
}

func NewCompetitionRepository(items []competition.Competition) *CompetitionRepository {
	rows := newTable(
		func(c competition.Competition) string { return c.ID },
		func(c competition.Competition) string { return c.Slug },
		func(c competition.Competition) string {
			if c.ExternalID == 0 {
				return ""
			}
			return strconv.FormatInt(c.ExternalID, 10)
		},
	)
	rows.seed(items)
	return &CompetitionRepository{rows: rows}
}

func (r *CompetitionRepository) List(_ context.Context, filter competition.Filter) ([]competition.Competition, error) {
	country := strings.TrimSpace(filter.Country)
	out := r.rows.filter(func(c competition.Competition) bool {
		if filter.ActiveOnly && !c.IsActive {
			return false
		}
		return country == "" || strings.EqualFold(c.Country, country)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *CompetitionRepository) GetByID(_ context.Context, id string) (competition.Competition, bool, error) {
	c, ok := r.rows.get(id)
	return c, ok, nil
}

func (r *CompetitionRepository) GetBySlug(_ context.Context, slug string) (competition.Competition, bool, error) {
	c, ok := r.rows.find(func(c competition.Competition) bool { return c.Slug == slug })
	return c, ok, nil
}

func (r *CompetitionRepository) GetByExternalID(_ context.Context, externalID int64) (competition.Competition, bool, error) {
	c, ok := r.rows.find(func(c competition.Competition) bool { return c.ExternalID == externalID })
	return c, ok, nil
}

func (r *CompetitionRepository) Create(_ context.Context, c competition.Competition) error {
	return r.rows.insert(c)
}

func (r *CompetitionRepository) Update(_ context.Context, c competition.Competition) error {
	return r.rows.update(c)
}

func (r *CompetitionRepository) Delete(_ context.Context, id string) error {
	return r.rows.delete(id)
}
