package match

import (
	"context"
	"time"
)

// Repository describes match persistence needs from use cases.
type Repository interface {
	// List returns every match, newest kickoff first.
	List(ctx context.Context) ([]Match, error)
	GetByID(ctx context.Context, id string) (Match, bool, error)
	// ListBetween returns matches with from <= kickoff < to, oldest first.
	ListBetween(ctx context.Context, from, to time.Time) ([]Match, error)
	ListByStatus(ctx context.Context, statuses ...Status) ([]Match, error)
	// ListByTeam returns home or away matches of a team, newest first.
	ListByTeam(ctx context.Context, teamID string) ([]Match, error)
	Create(ctx context.Context, m Match) error
	Update(ctx context.Context, m Match) error
	Delete(ctx context.Context, id string) error
}
