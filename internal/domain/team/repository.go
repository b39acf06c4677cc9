package team

import "context"

// Repository describes team persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Team, error)
	GetByID(ctx context.Context, id string) (Team, bool, error)
	GetByIDs(ctx context.Context, ids []string) ([]Team, error)
	Search(ctx context.Context, query string) ([]Team, error)
	ListByCompetition(ctx context.Context, competitionID string) ([]Team, error)
	Create(ctx context.Context, t Team) error
	Update(ctx context.Context, t Team) error
	Delete(ctx context.Context, id string) error
}
