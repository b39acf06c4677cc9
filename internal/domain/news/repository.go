package news

import "context"

type Filter struct {
	PublishedOnly bool
	Category      Category
	// Query matches title, summary or tags case-insensitively.
	Query string
}

// Repository describes news persistence needs from use cases.
type Repository interface {
	// List returns articles newest first.
	List(ctx context.Context, filter Filter) ([]Article, error)
	GetByID(ctx context.Context, id string) (Article, bool, error)
	GetBySlug(ctx context.Context, slug string) (Article, bool, error)
	IncrementViews(ctx context.Context, id string) error
	Create(ctx context.Context, a Article) error
	Update(ctx context.Context, a Article) error
	Delete(ctx context.Context, id string) error
}
