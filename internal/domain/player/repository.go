package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id string) (Player, bool, error)
	Search(ctx context.Context, query string) ([]Player, error)
	ListByTeam(ctx context.Context, teamID string) ([]Player, error)
	TopByMarketValue(ctx context.Context, limit int) ([]Player, error)
	Create(ctx context.Context, p Player) error
	Update(ctx context.Context, p Player) error
	Delete(ctx context.Context, id string) error
}
