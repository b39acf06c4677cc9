package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-portal/internal/domain/match"
	qb "github.com/riskibarqy/football-portal/internal/platform/querybuilder"
)

const matchesTable = "matches"

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context) ([]match.Match, error) {
	return r.selectMatches(ctx, "select matches", qb.Select(matchColumns...).From(matchesTable).
		OrderBy("match_date DESC", "id"))
}

func (r *MatchRepository) GetByID(ctx context.Context, id string) (match.Match, bool, error) {
	query, args, err := qb.Select(matchColumns...).From(matchesTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchRepository) ListBetween(ctx context.Context, from, to time.Time) ([]match.Match, error) {
	return r.selectMatches(ctx, "select matches between", qb.Select(matchColumns...).From(matchesTable).
		Where(qb.Gte("match_date", from.UTC()), qb.Lt("match_date", to.UTC())).
		OrderBy("match_date", "id"))
}

func (r *MatchRepository) ListByStatus(ctx context.Context, statuses ...match.Status) ([]match.Match, error) {
	values := make([]string, 0, len(statuses))
	for _, s := range statuses {
		values = append(values, string(s))
	}
	return r.selectMatches(ctx, "select matches by status", qb.Select(matchColumns...).From(matchesTable).
		Where(qb.InStrings("status", values)).
		OrderBy("match_date", "id"))
}

func (r *MatchRepository) ListByTeam(ctx context.Context, teamID string) ([]match.Match, error) {
	return r.selectMatches(ctx, "select matches by team", qb.Select(matchColumns...).From(matchesTable).
		Where(qb.Or(qb.Eq("home_team_id", teamID), qb.Eq("away_team_id", teamID))).
		OrderBy("match_date DESC", "id"))
}

func (r *MatchRepository) selectMatches(ctx context.Context, op string, b *qb.SelectBuilder) ([]match.Match, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, m match.Match) error {
	query, args, err := qb.InsertModel(matchesTable, newMatchTableModel(m), "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("insert match", err)
	}
	return nil
}

func (r *MatchRepository) Update(ctx context.Context, m match.Match) error {
	query, args, err := qb.UpdateModel(matchesTable, newMatchTableModel(m), "id")
	if err != nil {
		return fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update match", err)
	}
	return requireAffected("update match", result)
}

func (r *MatchRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(matchesTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	return requireAffected("delete match", result)
}
