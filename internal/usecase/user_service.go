package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/user"
)

// UserService backs the admin user endpoints. Returned users carry no
// password hash.
type UserService struct {
	repo user.Repository
	now  func() time.Time
}

func NewUserService(repo user.Repository) *UserService {
	return &UserService{
		repo: repo,
		now:  time.Now,
	}
}

func (s *UserService) List(ctx context.Context) ([]user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.List")
	defer span.End()

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	for i := range items {
		items[i].PasswordHash = ""
	}
	return items, nil
}

func (s *UserService) Get(ctx context.Context, userID string) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Get")
	defer span.End()

	item, err := s.get(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	item.PasswordHash = ""
	return item, nil
}

func (s *UserService) Update(ctx context.Context, userID string, patch user.Patch) (user.User, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Update")
	defer span.End()

	item, err := s.get(ctx, userID)
	if err != nil {
		return user.User{}, err
	}
	patch.Apply(&item)
	item.UpdatedAt = s.now().UTC()

	if err := item.Validate(); err != nil {
		return user.User{}, invalidInput(err)
	}
	if err := s.repo.Update(ctx, item); err != nil {
		return user.User{}, repoError("update user", err)
	}
	item.PasswordHash = ""
	return item, nil
}

func (s *UserService) Delete(ctx context.Context, userID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.UserService.Delete")
	defer span.End()

	userID = strings.TrimSpace(userID)
	if userID == "" {
		return fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, userID); err != nil {
		return repoError("delete user", err)
	}
	return nil
}

func (s *UserService) get(ctx context.Context, userID string) (user.User, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return user.User{}, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}

	item, exists, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		return user.User{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.User{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	return item, nil
}
