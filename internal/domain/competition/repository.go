package competition

import "context"

type Filter struct {
	Country    string
	ActiveOnly bool
}

// Repository describes competition persistence needs from use cases.
type Repository interface {
	List(ctx context.Context, filter Filter) ([]Competition, error)
	GetByID(ctx context.Context, id string) (Competition, bool, error)
	GetBySlug(ctx context.Context, slug string) (Competition, bool, error)
	GetByExternalID(ctx context.Context, externalID int64) (Competition, bool, error)
	Create(ctx context.Context, c Competition) error
	Update(ctx context.Context, c Competition) error
	Delete(ctx context.Context, id string) error
}
