package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/match"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/platform/id"
)

// MatchService manages locally stored matches. Provider fixtures are served
// by FeedService.
type MatchService struct {
	matchRepo       match.Repository
	teamRepo        team.Repository
	competitionRepo competition.Repository
	idGen           id.Generator
	now             func() time.Time
}

func NewMatchService(
	matchRepo match.Repository,
	teamRepo team.Repository,
	competitionRepo competition.Repository,
	idGen id.Generator,
) *MatchService {
	return &MatchService{
		matchRepo:       matchRepo,
		teamRepo:        teamRepo,
		competitionRepo: competitionRepo,
		idGen:           idGen,
		now:             time.Now,
	}
}

func (s *MatchService) List(ctx context.Context) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.List")
	defer span.End()

	items, err := s.matchRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return items, nil
}

func (s *MatchService) Get(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Get")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}
	return item, nil
}

func (s *MatchService) ListByTeam(ctx context.Context, teamID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	items, err := s.matchRepo.ListByTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}
	return items, nil
}

func (s *MatchService) Create(ctx context.Context, m match.Match) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Create")
	defer span.End()

	newID, err := s.idGen.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}
	m.ID = newID
	if m.Status == "" {
		m.Status = match.StatusScheduled
	}
	m.MatchDate = m.MatchDate.UTC()
	now := s.now().UTC()
	m.CreatedAt, m.UpdatedAt = now, now

	if err := m.Validate(); err != nil {
		return match.Match{}, invalidInput(err)
	}
	if err := s.ensureReferences(ctx, m); err != nil {
		return match.Match{}, err
	}
	if err := s.matchRepo.Create(ctx, m); err != nil {
		return match.Match{}, repoError("create match", err)
	}
	return m, nil
}

func (s *MatchService) Update(ctx context.Context, matchID string, patch match.Patch) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Update")
	defer span.End()

	item, err := s.Get(ctx, matchID)
	if err != nil {
		return match.Match{}, err
	}
	patch.Apply(&item)
	item.MatchDate = item.MatchDate.UTC()
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return match.Match{}, invalidInput(err)
	}
	if patch.HomeTeamID != nil || patch.AwayTeamID != nil || patch.CompetitionID != nil {
		if err := s.ensureReferences(ctx, item); err != nil {
			return match.Match{}, err
		}
	}
	if err := s.matchRepo.Update(ctx, item); err != nil {
		return match.Match{}, repoError("update match", err)
	}
	return item, nil
}

func (s *MatchService) Delete(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.Delete")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if err := s.matchRepo.Delete(ctx, matchID); err != nil {
		return repoError("delete match", err)
	}
	return nil
}

func (s *MatchService) ensureReferences(ctx context.Context, m match.Match) error {
	teams, err := s.teamRepo.GetByIDs(ctx, []string{m.HomeTeamID, m.AwayTeamID})
	if err != nil {
		return fmt.Errorf("get match teams: %w", err)
	}
	if len(teams) != 2 {
		return fmt.Errorf("%w: home=%s away=%s must both exist", ErrInvalidInput, m.HomeTeamID, m.AwayTeamID)
	}

	_, exists, err := s.competitionRepo.GetByID(ctx, m.CompetitionID)
	if err != nil {
		return fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: competition=%s does not exist", ErrInvalidInput, m.CompetitionID)
	}
	return nil
}
