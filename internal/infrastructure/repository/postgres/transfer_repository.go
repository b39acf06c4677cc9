package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-portal/internal/domain/transfer"
	qb "github.com/riskibarqy/football-portal/internal/platform/querybuilder"
)

const transfersTable = "transfers"

type TransferRepository struct {
	db *sqlx.DB
}

func NewTransferRepository(db *sqlx.DB) *TransferRepository {
	return &TransferRepository{db: db}
}

func (r *TransferRepository) List(ctx context.Context) ([]transfer.Transfer, error) {
	return r.selectTransfers(ctx, "select transfers", qb.Select(transferColumns...).From(transfersTable).
		OrderBy("transfer_date DESC", "id"))
}

func (r *TransferRepository) GetByID(ctx context.Context, id string) (transfer.Transfer, bool, error) {
	query, args, err := qb.Select(transferColumns...).From(transfersTable).
		Where(qb.Eq("id", id)).
		Limit(1).
		ToSQL()
	if err != nil {
		return transfer.Transfer{}, false, fmt.Errorf("build get transfer by id query: %w", err)
	}

	var row transferTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return transfer.Transfer{}, false, nil
		}
		return transfer.Transfer{}, false, fmt.Errorf("get transfer by id: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *TransferRepository) Top(ctx context.Context, limit int) ([]transfer.Transfer, error) {
	b := qb.Select(transferColumns...).From(transfersTable).OrderBy("fee DESC", "transfer_date DESC")
	if limit > 0 {
		b.Limit(limit)
	}
	return r.selectTransfers(ctx, "select top transfers", b)
}

func (r *TransferRepository) ListBySeason(ctx context.Context, season string) ([]transfer.Transfer, error) {
	return r.selectTransfers(ctx, "select transfers by season", qb.Select(transferColumns...).From(transfersTable).
		Where(qb.Eq("season", season)).
		OrderBy("transfer_date DESC", "id"))
}

func (r *TransferRepository) ListByPlayer(ctx context.Context, playerID string) ([]transfer.Transfer, error) {
	return r.selectTransfers(ctx, "select transfers by player", qb.Select(transferColumns...).From(transfersTable).
		Where(qb.Eq("player_id", playerID)).
		OrderBy("transfer_date DESC", "id"))
}

func (r *TransferRepository) selectTransfers(ctx context.Context, op string, b *qb.SelectBuilder) ([]transfer.Transfer, error) {
	query, args, err := b.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []transferTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]transfer.Transfer, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *TransferRepository) Create(ctx context.Context, t transfer.Transfer) error {
	query, args, err := qb.InsertModel(transfersTable, newTransferTableModel(t), "")
	if err != nil {
		return fmt.Errorf("build insert transfer query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("insert transfer", err)
	}
	return nil
}

func (r *TransferRepository) Update(ctx context.Context, t transfer.Transfer) error {
	query, args, err := qb.UpdateModel(transfersTable, newTransferTableModel(t), "id")
	if err != nil {
		return fmt.Errorf("build update transfer query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update transfer", err)
	}
	return requireAffected("update transfer", result)
}

func (r *TransferRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(transfersTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete transfer query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	return requireAffected("delete transfer", result)
}
