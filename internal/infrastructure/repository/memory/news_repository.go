package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/riskibarqy/football-portal/internal/domain/news"
)

type NewsRepository struct {
	rows *table[news.Article]
}

func NewNewsRepository(items []news.Article) *NewsRepository {
	rows := newTable(
		func(a news.Article) string { return a.ID },
		func(a news.Article) string { return a.Slug },
	)
	rows.seed(items)
	return &NewsRepository{rows: rows}
}

func (r *NewsRepository) List(_ context.Context, filter news.Filter) ([]news.Article, error) {
	q := strings.ToLower(strings.TrimSpace(filter.Query))
	out := r.rows.filter(func(a news.Article) bool {
		if filter.PublishedOnly && !a.IsPublished {
			return false
		}
		if filter.Category != "" && a.Category != filter.Category {
			return false
		}
		return q == "" || articleMatches(a, q)
	})
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *NewsRepository) GetByID(_ context.Context, id string) (news.Article, bool, error) {
	a, ok := r.rows.get(id)
	return a, ok, nil
}

func (r *NewsRepository) GetBySlug(_ context.Context, slug string) (news.Article, bool, error) {
	a, ok := r.rows.find(func(a news.Article) bool { return a.Slug == slug })
	return a, ok, nil
}

func (r *NewsRepository) IncrementViews(_ context.Context, id string) error {
	return r.rows.mutate(id, func(a *news.Article) { a.Views++ })
}

func (r *NewsRepository) Create(_ context.Context, a news.Article) error {
	return r.rows.insert(a)
}

func (r *NewsRepository) Update(_ context.Context, a news.Article) error {
	return r.rows.update(a)
}

func (r *NewsRepository) Delete(_ context.Context, id string) error {
	return r.rows.delete(id)
}

func articleMatches(a news.Article, q string) bool {
	if strings.Contains(strings.ToLower(a.Title), q) || strings.Contains(strings.ToLower(a.Summary), q) {
		return true
	}
	for _, tag := range a.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}
