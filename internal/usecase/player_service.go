package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/player"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/platform/id"
)

const (
	defaultTopLimit = 10
	maxTopLimit     = 100
)

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	idGen      id.Generator
	now        func() time.Time
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, idGen id.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		idGen:      idGen,
		now:        time.Now,
	}
}

func (s *PlayerService) List(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.List")
	defer span.End()

	items, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Get(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return item, nil
}

func (s *PlayerService) Search(ctx context.Context, query string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Search")
	defer span.End()

	query, err := searchQuery(query)
	if err != nil {
		return nil, err
	}

	items, err := s.playerRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) ListByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}
	return items, nil
}

// TopByMarketValue lists the most valuable players. limit <= 0 means the
// default of 10; values above 100 are capped.
func (s *PlayerService) TopByMarketValue(ctx context.Context, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.TopByMarketValue")
	defer span.End()

	items, err := s.playerRepo.TopByMarketValue(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list top players: %w", err)
	}
	return items, nil
}

func (s *PlayerService) Create(ctx context.Context, p player.Player) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Create")
	defer span.End()

	newID, err := s.idGen.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}
	p.ID = newID
	if strings.TrimSpace(p.Name) == "" {
		p.Name = strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	now := s.now().UTC()
	p.CreatedAt, p.UpdatedAt = now, now

	if err := p.Validate(); err != nil {
		return player.Player{}, invalidInput(err)
	}
	if err := s.ensureTeam(ctx, p.TeamID); err != nil {
		return player.Player{}, err
	}
	if err := s.playerRepo.Create(ctx, p); err != nil {
		return player.Player{}, repoError("create player", err)
	}
	return p, nil
}

func (s *PlayerService) Update(ctx context.Context, playerID string, patch player.Patch) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer span.End()

	item, err := s.Get(ctx, playerID)
	if err != nil {
		return player.Player{}, err
	}
	patch.Apply(&item)
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return player.Player{}, invalidInput(err)
	}
	if patch.TeamID != nil {
		if err := s.ensureTeam(ctx, item.TeamID); err != nil {
			return player.Player{}, err
		}
	}
	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, repoError("update player", err)
	}
	return item, nil
}

func (s *PlayerService) Delete(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Delete")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return repoError("delete player", err)
	}
	return nil
}

// ensureTeam accepts an empty id for free agents.
func (s *PlayerService) ensureTeam(ctx context.Context, teamID string) error {
	if teamID == "" {
		return nil
	}
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s does not exist", ErrInvalidInput, teamID)
	}
	return nil
}

func clampLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultTopLimit
	case limit > maxTopLimit:
		return maxTopLimit
	default:
		return limit
	}
}
