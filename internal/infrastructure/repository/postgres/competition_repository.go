package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	qb "github.com/riskibarqy/football-portal/internal/platform/querybuilder"
)

const competitionsTable = "competitions"

type CompetitionRepository struct {
	db *sqlx.DB
}

func NewCompetitionRepository(db *sqlx.DB) *CompetitionRepository {
	return &CompetitionRepository{db: db}
}

func (r *CompetitionRepository) List(ctx context.Context, filter competition.Filter) ([]competition.Competition, error) {
	var conds []qb.Condition
	if country := strings.TrimSpace(filter.Country); country != "" {
		conds = append(conds, qb.Expr("LOWER(country) = LOWER(?)", country))
	}
	if filter.ActiveOnly {
		conds = append(conds, qb.Eq("is_active", true))
	}

	query, args, err := qb.Select(competitionColumns...).From(competitionsTable).
		Where(conds...).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select competitions query: %w", err)
	}

	var rows []competitionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select competitions: %w", err)
	}

	out := make([]competition.Competition, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *CompetitionRepository) GetByID(ctx context.Context, id string) (competition.Competition, bool, error) {
	return r.getOne(ctx, "get competition by id", qb.Eq("id", id))
}

func (r *CompetitionRepository) GetBySlug(ctx context.Context, slug string) (competition.Competition, bool, error) {
	return r.getOne(ctx, "get competition by slug", qb.Eq("slug", slug))
}

func (r *CompetitionRepository) GetByExternalID(ctx context.Context, externalID int64) (competition.Competition, bool, error) {
	if externalID <= 0 {
		return competition.Competition{}, false, nil
	}
	return r.getOne(ctx, "get competition by external id", qb.Eq("external_id", externalID))
}

func (r *CompetitionRepository) getOne(ctx context.Context, op string, cond qb.Condition) (competition.Competition, bool, error) {
	query, args, err := qb.Select(competitionColumns...).From(competitionsTable).
		Where(cond).
		Limit(1).
		ToSQL()
	if err != nil {
		return competition.Competition{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row competitionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return competition.Competition{}, false, nil
		}
		return competition.Competition{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func (r *CompetitionRepository) Create(ctx context.Context, c competition.Competition) error {
	query, args, err := qb.InsertModel(competitionsTable, newCompetitionTableModel(c), "")
	if err != nil {
		return fmt.Errorf("build insert competition query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("insert competition", err)
	}
	return nil
}

func (r *CompetitionRepository) Update(ctx context.Context, c competition.Competition) error {
	model := newCompetitionTableModel(c)
	query, args, err := qb.Update(competitionsTable).
		Set("name", model.Name).
		Set("slug", model.Slug).
		Set("logo", model.Logo).
		Set("country", model.Country).
		Set("type", model.Type).
		Set("season", model.Season).
		Set("is_active", model.IsActive).
		Set("external_id", model.ExternalID).
		Set("updated_at", model.UpdatedAt).
		Where(qb.Eq("id", model.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update competition query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update competition", err)
	}
	return requireAffected("update competition", result)
}

func (r *CompetitionRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(competitionsTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete competition query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete competition: %w", err)
	}
	return requireAffected("delete competition", result)
}
