package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-portal/internal/domain/player"
	qb "github.com/riskibarqy/football-portal/internal/platform/querybuilder"
)

const playersTable = "players"

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context) ([]player.Player, error) {
	return r.selectPlayers(ctx, "select players", qb.Select(playerColumns...).From(playersTable).OrderBy("name", "id"))
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From(playersTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) Search(ctx context.Context, query string) ([]player.Player, error) {
	term := strings.TrimSpace(query)
	return r.selectPlayers(ctx, "search players", qb.Select(playerColumns...).From(playersTable).
		Where(qb.Or(qb.ILike("name", term), qb.ILike("nationality", term))).
		OrderBy("name", "id"))
}

func (r *PlayerRepository) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	return r.selectPlayers(ctx, "select players by team", qb.Select(playerColumns...).From(playersTable).
		Where(qb.Eq("team_id", teamID)).
		OrderBy("number", "name"))
}

func (r *PlayerRepository) TopByMarketValue(ctx context.Context, limit int) ([]player.Player, error) {
	b := qb.Select(playerColumns...).From(playersTable).OrderBy("market_value DESC", "name")
	if limit > 0 {
		b.Limit(limit)
	}
	return r.selectPlayers(ctx, "select top players by market value", b)
}

func (r *PlayerRepository) selectPlayers(ctx context.Context, op string, b *qb.SelectBuilder) ([]player.Player, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *PlayerRepository) Create(ctx context.Context, p player.Player) error {
	query, args, err := qb.InsertModel(playersTable, newPlayerTableModel(p), "")
	if err != nil {
		return fmt.Errorf("build insert player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("insert player", err)
	}
	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, p player.Player) error {
	query, args, err := qb.UpdateModel(playersTable, newPlayerTableModel(p), "id")
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update player", err)
	}
	return requireAffected("update player", result)
}

func (r *PlayerRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(playersTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return requireAffected("delete player", result)
}
