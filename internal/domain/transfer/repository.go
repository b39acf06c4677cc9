package transfer

import "context"

// Repository describes transfer persistence needs from use cases.
type Repository interface {
	// List returns transfers, most recent first.
	List(ctx context.Context) ([]Transfer, error)
	GetByID(ctx context.Context, id string) (Transfer, bool, error)
	// Top returns the highest fees first.
	Top(ctx context.Context, limit int) ([]Transfer, error)
	ListBySeason(ctx context.Context, season string) ([]Transfer, error)
	ListByPlayer(ctx context.Context, playerID string) ([]Transfer, error)
	Create(ctx context.Context, t Transfer) error
	Update(ctx context.Context, t Transfer) error
	Delete(ctx context.Context, id string) error
}
