package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-portal/internal/domain/team"
	qb "github.com/riskibarqy/football-portal/internal/platform/querybuilder"
)

const teamsTable = "teams"

type TeamRepository struct {
	db *sqlx.DB
}

func NewTeamRepository(db *sqlx.DB) *TeamRepository {
	return &TeamRepository{db: db}
}

func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	return r.selectTeams(ctx, "select teams")
}

func (r *TeamRepository) GetByID(ctx context.Context, id string) (team.Team, bool, error) {
	query, args, err := qb.Select(teamColumns...).From(teamsTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return team.Team{}, false, fmt.Errorf("build get team by id query: %w", err)
	}

	var row teamTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return team.Team{}, false, nil
		}
		return team.Team{}, false, fmt.Errorf("get team by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TeamRepository) GetByIDs(ctx context.Context, ids []string) ([]team.Team, error) {
	if len(ids) == 0 {
		return []team.Team{}, nil
	}
	return r.selectTeams(ctx, "select teams by ids", qb.InStrings("id", ids))
}

func (r *TeamRepository) Search(ctx context.Context, query string) ([]team.Team, error) {
	term := strings.TrimSpace(query)
	return r.selectTeams(ctx, "search teams", qb.Or(
		qb.ILike("name", term),
		qb.ILike("short_name", term),
		qb.ILike("city", term),
	))
}

func (r *TeamRepository) ListByCompetition(ctx context.Context, competitionID string) ([]team.Team, error) {
	return r.selectTeams(ctx, "select teams by competition", qb.Eq("competition_id", competitionID))
}

func (r *TeamRepository) selectTeams(ctx context.Context, op string, conds ...qb.Condition) ([]team.Team, error) {
	query, args, err := qb.Select(teamColumns...).From(teamsTable).
		Where(conds...).
		OrderBy("name", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []teamTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TeamRepository) Create(ctx context.Context, t team.Team) error {
	query, args, err := qb.InsertModel(teamsTable, newTeamTableModel(t), "")
	if err != nil {
		return fmt.Errorf("build insert team query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("insert team", err)
	}
	return nil
}

func (r *TeamRepository) Update(ctx context.Context, t team.Team) error {
	query, args, err := qb.UpdateModel(teamsTable, newTeamTableModel(t), "id")
	if err != nil {
		return fmt.Errorf("build update team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update team", err)
	}
	return requireAffected("update team", result)
}

func (r *TeamRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(teamsTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete team query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	return requireAffected("delete team", result)
}
