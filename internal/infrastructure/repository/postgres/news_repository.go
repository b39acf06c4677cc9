package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-portal/internal/domain/news"
	qb "github.com/riskibarqy/football-portal/internal/platform/querybuilder"
)

const newsTable = "news"

type NewsRepository struct {
	db *sqlx.DB
}

func NewNewsRepository(db *sqlx.DB) *NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) List(ctx context.Context, filter news.Filter) ([]news.Article, error) {
	var conds []qb.Condition
	if filter.PublishedOnly {
		conds = append(conds, qb.Eq("is_published", true))
	}
	if filter.Category != "" {
		conds = append(conds, qb.Eq("category", string(filter.Category)))
	}
	if term := strings.TrimSpace(filter.Query); term != "" {
		conds = append(conds, qb.Or(
			qb.ILike("title", term),
			qb.ILike("summary", term),
			qb.Expr("EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE ?)", "%"+likePattern(term)+"%"),
		))
	}

	query, args, err := qb.Select(newsColumns...).From(newsTable).
		Where(conds...).
		OrderBy("created_at DESC", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select news query: %w", err)
	}

	var rows []newsTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select news: %w", err)
	}

	out := make([]news.Article, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *NewsRepository) GetByID(ctx context.Context, id string) (news.Article, bool, error) {
	return r.getOne(ctx, "get news by id", qb.Eq("id", id))
}

func (r *NewsRepository) GetBySlug(ctx context.Context, slug string) (news.Article, bool, error) {
	return r.getOne(ctx, "get news by slug", qb.Eq("slug", slug))
}

func (r *NewsRepository) getOne(ctx context.Context, op string, cond qb.Condition) (news.Article, bool, error) {
	query, args, err := qb.Select(newsColumns...).From(newsTable).
		Where(cond).
		Limit(1).
		ToSQL()
	if err != nil {
		return news.Article{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row newsTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return news.Article{}, false, nil
		}
		return news.Article{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

// IncrementViews bumps the counter with a single UPDATE.
func (r *NewsRepository) IncrementViews(ctx context.Context, id string) error {
	query, args, err := qb.Update(newsTable).
		SetExpr("views", "views + 1").
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build increment news views query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("increment news views: %w", err)
	}
	return requireAffected("increment news views", result)
}

func (r *NewsRepository) Create(ctx context.Context, a news.Article) error {
	query, args, err := qb.InsertModel(newsTable, newNewsTableModel(a), "")
	if err != nil {
		return fmt.Errorf("build insert news query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("insert news", err)
	}
	return nil
}

// Update rewrites the article but leaves the view counter alone.
func (r *NewsRepository) Update(ctx context.Context, a news.Article) error {
	m := newNewsTableModel(a)
	query, args, err := qb.Update(newsTable).
		Set("title", m.Title).
		Set("slug", m.Slug).
		Set("content", m.Content).
		Set("summary", m.Summary).
		Set("cover_image", m.CoverImage).
		Set("category", m.Category).
		Set("is_published", m.IsPublished).
		Set("tags", m.Tags).
		Set("author_id", m.AuthorID).
		Set("published_at", m.PublishedAt).
		Set("updated_at", m.UpdatedAt).
		Where(qb.Eq("id", m.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update news query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update news", err)
	}
	return requireAffected("update news", result)
}

func (r *NewsRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(newsTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete news query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	return requireAffected("delete news", result)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return likeEscaper.Replace(term)
}
