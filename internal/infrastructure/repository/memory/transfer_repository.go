package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-portal/internal/domain/transfer"
)

type TransferRepository struct {
	rows *table[transfer.Transfer]
}

func NewTransferRepository(items []transfer.Transfer) *TransferRepository {
	rows := newTable(func(t transfer.Transfer) string { return t.ID })
	rows.seed(items)
	return &TransferRepository{rows: rows}
}

func (r *TransferRepository) List(_ context.Context) ([]transfer.Transfer, error) {
	return recentFirst(r.rows.filter(nil)), nil
}

func (r *TransferRepository) GetByID(_ context.Context, id string) (transfer.Transfer, bool, error) {
	t, ok := r.rows.get(id)
	return t, ok, nil
}

func (r *TransferRepository) Top(_ context.Context, limit int) ([]transfer.Transfer, error) {
	out := r.rows.filter(nil)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Fee != out[j].Fee {
			return out[i].Fee > out[j].Fee
		}
		return out[i].TransferDate.After(out[j].TransferDate)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *TransferRepository) ListBySeason(_ context.Context, season string) ([]transfer.Transfer, error) {
	return recentFirst(r.rows.filter(func(t transfer.Transfer) bool { return t.Season == season })), nil
}

func (r *TransferRepository) ListByPlayer(_ context.Context, playerID string) ([]transfer.Transfer, error) {
	return recentFirst(r.rows.filter(func(t transfer.Transfer) bool { return t.PlayerID == playerID })), nil
}

func (r *TransferRepository) Create(_ context.Context, t transfer.Transfer) error {
	return r.rows.insert(t)
}

func (r *TransferRepository) Update(_ context.Context, t transfer.Transfer) error {
	return r.rows.update(t)
}

func (r *TransferRepository) Delete(_ context.Context, id string) error {
	return r.rows.delete(id)
}

func recentFirst(items []transfer.Transfer) []transfer.Transfer {
	sort.Slice(items, func(i, j int) bool { return items[i].TransferDate.After(items[j].TransferDate) })
	return items
}
