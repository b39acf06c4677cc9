package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/player"
	"github.com/riskibarqy/football-portal/internal/domain/transfer"
	"github.com/riskibarqy/football-portal/internal/platform/id"
)

type TransferService struct {
	transferRepo transfer.Repository
	playerRepo   player.Repository
	idGen        id.Generator
	now          func() time.Time
}

func NewTransferService(transferRepo transfer.Repository, playerRepo player.Repository, idGen id.Generator) *TransferService {
	return &TransferService{
		transferRepo: transferRepo,
		playerRepo:   playerRepo,
		idGen:        idGen,
		now:          time.Now,
	}
}

func (s *TransferService) List(ctx context.Context) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.List")
	defer span.End()

	items, err := s.transferRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	return items, nil
}

func (s *TransferService) Get(ctx context.Context, transferID string) (transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Get")
	defer span.End()

	transferID = strings.TrimSpace(transferID)
	if transferID == "" {
		return transfer.Transfer{}, fmt.Errorf("%w: transfer id is required", ErrInvalidInput)
	}

	item, exists, err := s.transferRepo.GetByID(ctx, transferID)
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("get transfer: %w", err)
	}
	if !exists {
		return transfer.Transfer{}, fmt.Errorf("%w: transfer=%s", ErrNotFound, transferID)
	}
	return item, nil
}

func (s *TransferService) Top(ctx context.Context, limit int) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Top")
	defer span.End()

	items, err := s.transferRepo.Top(ctx, clampLimit(limit))
	if err != nil {
		return nil, fmt.Errorf("list top transfers: %w", err)
	}
	return items, nil
}

func (s *TransferService) ListBySeason(ctx context.Context, season string) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.ListBySeason")
	defer span.End()

	season = strings.TrimSpace(season)
	if season == "" {
		return nil, fmt.Errorf("%w: season is required", ErrInvalidInput)
	}

	items, err := s.transferRepo.ListBySeason(ctx, season)
	if err != nil {
		return nil, fmt.Errorf("list transfers by season: %w", err)
	}
	return items, nil
}

func (s *TransferService) ListByPlayer(ctx context.Context, playerID string) ([]transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.ListByPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	items, err := s.transferRepo.ListByPlayer(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("list transfers by player: %w", err)
	}
	return items, nil
}

func (s *TransferService) Create(ctx context.Context, t transfer.Transfer) (transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Create")
	defer span.End()

	newID, err := s.idGen.NewID()
	if err != nil {
		return transfer.Transfer{}, fmt.Errorf("generate transfer id: %w", err)
	}
	t.ID = newID
	if t.Type == "" {
		t.Type = transfer.TypePermanent
	}
	t.TransferDate = t.TransferDate.UTC()
	now := s.now().UTC()
	t.CreatedAt, t.UpdatedAt = now, now

	if err := t.Validate(); err != nil {
		return transfer.Transfer{}, invalidInput(err)
	}
	if err := s.ensurePlayer(ctx, t.PlayerID); err != nil {
		return transfer.Transfer{}, err
	}
	if err := s.transferRepo.Create(ctx, t); err != nil {
		return transfer.Transfer{}, repoError("create transfer", err)
	}
	return t, nil
}

func (s *TransferService) Update(ctx context.Context, transferID string, patch transfer.Patch) (transfer.Transfer, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Update")
	defer span.End()

	item, err := s.Get(ctx, transferID)
	if err != nil {
		return transfer.Transfer{}, err
	}
	patch.Apply(&item)
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return transfer.Transfer{}, invalidInput(err)
	}
	if patch.PlayerID != nil {
		if err := s.ensurePlayer(ctx, item.PlayerID); err != nil {
			return transfer.Transfer{}, err
		}
	}
	if err := s.transferRepo.Update(ctx, item); err != nil {
		return transfer.Transfer{}, repoError("update transfer", err)
	}
	return item, nil
}

func (s *TransferService) Delete(ctx context.Context, transferID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TransferService.Delete")
	defer span.End()

	transferID = strings.TrimSpace(transferID)
	if transferID == "" {
		return fmt.Errorf("%w: transfer id is required", ErrInvalidInput)
	}
	if err := s.transferRepo.Delete(ctx, transferID); err != nil {
		return repoError("delete transfer", err)
	}
	return nil
}

func (s *TransferService) ensurePlayer(ctx context.Context, playerID string) error {
	_, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return fmt.Errorf("get player: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: player=%s does not exist", ErrInvalidInput, playerID)
	}
	return nil
}
