package usecase

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/football-portal/internal/domain/storage"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrConflict              = errors.New("resource already exists")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrForbidden             = errors.New("forbidden")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// repoError translates storage sentinels into use-case errors.
func repoError(op string, err error) error {
	switch {
	case errors.Is(err, storage.ErrDuplicate):
		return fmt.Errorf("%w: %s: %v", ErrConflict, op, err)
	case errors.Is(err, storage.ErrNotFound):
		return fmt.Errorf("%w: %s: %v", ErrNotFound, op, err)
	default:
		return fmt.Errorf("%s: %w", op, err)
	}
}

func invalidInput(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}
