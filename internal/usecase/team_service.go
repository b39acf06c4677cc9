package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/riskibarqy/football-portal/internal/domain/competition"
	"github.com/riskibarqy/football-portal/internal/domain/team"
	"github.com/riskibarqy/football-portal/internal/platform/id"
)

const minSearchLength = 2

type TeamService struct {
	teamRepo        team.Repository
	competitionRepo competition.Repository
	idGen           id.Generator
	now             func() time.Time
}

func NewTeamService(teamRepo team.Repository, competitionRepo competition.Repository, idGen id.Generator) *TeamService {
	return &TeamService{
		teamRepo:        teamRepo,
		competitionRepo: competitionRepo,
		idGen:           idGen,
		now:             time.Now,
	}
}

func (s *TeamService) List(ctx context.Context) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.List")
	defer span.End()

	items, err := s.teamRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) Get(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Get")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return item, nil
}

func (s *TeamService) Search(ctx context.Context, query string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Search")
	defer span.End()

	query, err := searchQuery(query)
	if err != nil {
		return nil, err
	}

	items, err := s.teamRepo.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search teams: %w", err)
	}
	return items, nil
}

func (s *TeamService) ListByCompetition(ctx context.Context, competitionID string) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListByCompetition")
	defer span.End()

	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return nil, fmt.Errorf("%w: competition id is required", ErrInvalidInput)
	}

	_, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: competition=%s", ErrNotFound, competitionID)
	}

	items, err := s.teamRepo.ListByCompetition(ctx, competitionID)
	if err != nil {
		return nil, fmt.Errorf("list teams by competition: %w", err)
	}
	return items, nil
}

func (s *TeamService) Create(ctx context.Context, t team.Team) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Create")
	defer span.End()

	newID, err := s.idGen.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}
	t.ID = newID
	t.ShortName = strings.ToUpper(strings.TrimSpace(t.ShortName))
	now := s.now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now

	if err := t.Validate(); err != nil {
		return team.Team{}, invalidInput(err)
	}
	if err := s.ensureCompetition(ctx, t.CompetitionID); err != nil {
		return team.Team{}, err
	}
	if err := s.teamRepo.Create(ctx, t); err != nil {
		return team.Team{}, repoError("create team", err)
	}
	return t, nil
}

func (s *TeamService) Update(ctx context.Context, teamID string, patch team.Patch) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Update")
	defer span.End()

	item, err := s.Get(ctx, teamID)
	if err != nil {
		return team.Team{}, err
	}
	patch.Apply(&item)
	item.ShortName = strings.ToUpper(strings.TrimSpace(item.ShortName))
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return team.Team{}, invalidInput(err)
	}
	if patch.CompetitionID != nil {
		if err := s.ensureCompetition(ctx, item.CompetitionID); err != nil {
			return team.Team{}, err
		}
	}
	if err := s.teamRepo.Update(ctx, item); err != nil {
		return team.Team{}, repoError("update team", err)
	}
	return item, nil
}

func (s *TeamService) Delete(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.Delete")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if err := s.teamRepo.Delete(ctx, teamID); err != nil {
		return repoError("delete team", err)
	}
	return nil
}

// ensureCompetition accepts an empty id; teams may be unattached.
func (s *TeamService) ensureCompetition(ctx context.Context, competitionID string) error {
	if competitionID == "" {
		return nil
	}
	_, exists, err := s.competitionRepo.GetByID(ctx, competitionID)
	if err != nil {
		return fmt.Errorf("get competition: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: competition=%s does not exist", ErrInvalidInput, competitionID)
	}
	return nil
}

func searchQuery(raw string) (string, error) {
	q := strings.TrimSpace(raw)
	if utf8.RuneCountInString(q) < minSearchLength {
		return "", fmt.Errorf("%w: search query must be at least %d characters", ErrInvalidInput, minSearchLength)
	}
	return q, nil
}
