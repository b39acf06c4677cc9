package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/user"
	"github.com/riskibarqy/football-portal/internal/platform/id"
)

const (
	minPasswordLength = 6
	// bcrypt rejects passwords longer than 72 bytes.
	maxPasswordBytes = 72
)

type PasswordHasher interface {
	Hash(password string) (string, error)
	// Compare returns an error when password does not match hash.
	Compare(hash, password string) error
}

type TokenIssuer interface {
	Issue(u user.User) (string, time.Time, error)
	Parse(token string) (user.Principal, error)
}

type RegisterInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      user.Profile `json:"user"`
}

type AuthService struct {
	userRepo user.Repository
	hasher   PasswordHasher
	tokens   TokenIssuer
	idGen    id.Generator
	now      func() time.Time
}

func NewAuthService(userRepo user.Repository, hasher PasswordHasher, tokens TokenIssuer, idGen id.Generator) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		hasher:   hasher,
		tokens:   tokens,
		idGen:    idGen,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, input RegisterInput) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Register")
	defer span.End()

	email := user.NormalizeEmail(input.Email)
	if len(input.Password) < minPasswordLength {
		return AuthResult{}, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	if len(input.Password) > maxPasswordBytes {
		return AuthResult{}, fmt.Errorf("%w: password must be at most %d bytes", ErrInvalidInput, maxPasswordBytes)
	}

	_, exists, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("get user by email: %w", err)
	}
	if exists {
		return AuthResult{}, fmt.Errorf("%w: email is already registered", ErrConflict)
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}
	newID, err := s.idGen.NewID()
	if err != nil {
		return AuthResult{}, fmt.Errorf("generate user id: %w", err)
	}

	now := s.now().UTC()
	u := user.User{
		ID:           newID,
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		IsActive:     true,
		Role:         user.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.Validate(); err != nil {
		return AuthResult{}, invalidInput(err)
	}
	// Concurrent registrations surface here as ErrDuplicate.
	if err := s.userRepo.Create(ctx, u); err != nil {
		return AuthResult{}, repoError("create user", err)
	}

	return s.issue(u)
}

// Login never tells callers which of email or password was wrong.
func (s *AuthService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	u, exists, err := s.userRepo.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		return AuthResult{}, fmt.Errorf("get user by email: %w", err)
	}
	if !exists || !u.IsActive {
		return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}
	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return AuthResult{}, fmt.Errorf("%w: invalid credentials", ErrUnauthorized)
	}

	return s.issue(u)
}

func (s *AuthService) Me(ctx context.Context, userID string) (user.Profile, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Me")
	defer span.End()

	u, exists, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.Profile{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return user.Profile{}, fmt.Errorf("%w: user=%s", ErrNotFound, userID)
	}
	return u.Profile(), nil
}

// VerifyAccessToken validates a bearer token and confirms its user is still
// active.
func (s *AuthService) VerifyAccessToken(ctx context.Context, token string) (user.Principal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.VerifyAccessToken")
	defer span.End()

	principal, err := s.tokens.Parse(token)
	if err != nil {
		return user.Principal{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	u, exists, err := s.userRepo.GetByID(ctx, principal.UserID)
	if err != nil {
		return user.Principal{}, fmt.Errorf("get user: %w", err)
	}
	if !exists || !u.IsActive {
		return user.Principal{}, fmt.Errorf("%w: user is not active", ErrUnauthorized)
	}

	return user.Principal{UserID: u.ID, Email: u.Email, Role: u.Role}, nil
}

func (s *AuthService) issue(u user.User) (AuthResult, error) {
	token, expiresAt, err := s.tokens.Issue(u)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{Token: token, ExpiresAt: expiresAt, User: u.Profile()}, nil
}
