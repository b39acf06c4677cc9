package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/platform/id"
	"github.com/riskibarqy/football-portal/internal/platform/slug"
)

type CompetitionService struct {
	repo  competition.Repository
	idGen id.Generator
	now   func() time.Time
}

func NewCompetitionService(repo competition.Repository, idGen id.Generator) *CompetitionService {
	return &CompetitionService{
		repo:  repo,
		idGen: idGen,
		now:   time.Now,
	}
}

func (s *CompetitionService) List(ctx context.Context, filter competition.Filter) ([]competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.List")
	defer span.End()

	items, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list competitions: %w", err)
	}
	return items, nil
}

func (s *CompetitionService) Get(ctx context.Context, competitionID string) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Get")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return competition.Competition{}, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}
	return item, nil
}

func (s *CompetitionService) GetBySlug(ctx context.Context, value string) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.GetBySlug")
	defer span.End()

	value = strings.TrimSpace(value)
	if value == "" {
		return competition.Competition{}, fmt.Errorf("%w: slug is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetBySlug(ctx, value)
	if err != nil {
		return competition.Competition{}, fmt.Errorf("get competition by slug: %w", err)
	}
	if !exists {
		return competition.Competition{}, fmt.Errorf("%w: competition slug=%s", ErrNotFound, value)
	}
	return item, nil
}

// Create stores c under a fresh id. An empty slug is derived from the name
// and season.
func (s *CompetitionService) Create(ctx context.Context, c competition.Competition) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Create")
	defer span.End()

	newID, err := s.idGen.NewID()
	if err != nil {
		return competition.Competition{}, fmt.Errorf("generate competition id: %w", err)
	}
	c.ID = newID
	c.Name = strings.TrimSpace(c.Name)
	if strings.TrimSpace(c.Slug) == "" {
		c.Slug = slug.Make(c.Name + " " + c.Season)
	} else {
		c.Slug = slug.Make(c.Slug)
	}
	if c.Type == "" {
		c.Type = competition.TypeLeague
	}
	now := s.now().UTC()
	c.CreatedAt, c.UpdatedAt = now, now

	if err := c.Validate(); err != nil {
		return competition.Competition{}, invalidInput(err)
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return competition.Competition{}, repoError("create competition", err)
	}
	return c, nil
}

func (s *CompetitionService) Update(ctx context.Context, competitionID string, patch competition.Patch) (competition.Competition, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Update")
	defer span.End()

	item, err := s.Get(ctx, competitionID)
	if err != nil {
		return competition.Competition{}, err
	}
	patch.Apply(&item)
	item.Slug = slug.Make(item.Slug)
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return competition.Competition{}, invalidInput(err)
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return competition.Competition{}, repoError("update competition", err)
	}
	return item, nil
}

func (s *CompetitionService) Delete(ctx context.Context, competitionID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.CompetitionService.Delete")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, competitionID); err != nil {
		return repoError("delete competition", err)
	}
	return nil
}
