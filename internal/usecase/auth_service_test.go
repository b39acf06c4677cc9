package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/user"
	"github.com/riskibarqy/football-portal/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/football-portal/internal/platform/id"
)

type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (plainHasher) Compare(hash, password string) error {
	if hash != "hashed:"+password {
		return errors.New("mismatch")
	}
	return nil
}

type stubTokens struct{}

func (stubTokens) Issue(u user.User) (string, time.Time, error) {
	return "token:" + u.ID + ":" + string(u.Role), feedToday.Add(time.Hour), nil
}

func (stubTokens) Parse(token string) (user.Principal, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 || parts[0] != "token" {
		return user.Principal{}, errors.New("malformed token")
	}
	return user.Principal{UserID: parts[1], Role: user.Role(parts[2])}, nil
}

func newTestAuthService() (*AuthService, *memory.UserRepository) {
	repo := memory.NewUserRepository(nil)
	service := NewAuthService(repo, plainHasher{}, stubTokens{}, &id.SequenceGenerator{Prefix: "user-"})
	service.now = func() time.Time { return feedToday }
	return service, repo
}

func TestAuthService_Register_ReturnsTokenAndPublicProfile(t *testing.T) {
	t.Parallel()

	service, repo := newTestAuthService()
	got, err := service.Register(t.Context(), RegisterInput{
		Email:     " Fan@Example.com ",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if got.Token != "token:user-1:user" {
		t.Fatalf("unexpected token %q", got.Token)
	}
	want := user.Profile{ID: "user-1", Email: "fan@example.com", FirstName: "Ada", LastName: "Lovelace"}
	if got.User != want {
		t.Fatalf("unexpected profile: %+v", got.User)
	}

	stored, exists, _ := repo.GetByID(t.Context(), "user-1")
	if !exists || stored.PasswordHash != "hashed:secret1" || !stored.IsActive {
		t.Fatalf("unexpected stored user: %+v", stored)
	}
}

func TestAuthService_Register_DuplicateEmailIsConflict(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService()
	input := RegisterInput{Email: "fan@example.com", Password: "secret1", FirstName: "Ada", LastName: "L"}
	if _, err := service.Register(t.Context(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}

	input.Email = "FAN@example.com"
	if _, err := service.Register(t.Context(), input); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService()
	cases := []RegisterInput{
		{Email: "fan@example.com", Password: "123", FirstName: "A", LastName: "B"},
		{Email: "not-an-email", Password: "secret1", FirstName: "A", LastName: "B"},
		{Email: "fan@example.com", Password: "secret1", FirstName: "", LastName: "B"},
		{Email: "fan@example.com", Password: strings.Repeat("€", 25), FirstName: "A", LastName: "B"},
	}
	for _, input := range cases {
		if _, err := service.Register(t.Context(), input); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("input %+v: expected ErrInvalidInput, got %v", input, err)
		}
	}
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	service, repo := newTestAuthService()
	if _, err := service.Register(t.Context(), RegisterInput{Email: "fan@example.com", Password: "secret1", FirstName: "A", LastName: "B"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	got, err := service.Login(t.Context(), "FAN@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if got.User.ID != "user-1" {
		t.Fatalf("unexpected user %+v", got.User)
	}

	if _, err := service.Login(t.Context(), "fan@example.com", "wrong"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("wrong password: expected ErrUnauthorized, got %v", err)
	}
	if _, err := service.Login(t.Context(), "nobody@example.com", "secret1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("unknown email: expected ErrUnauthorized, got %v", err)
	}

	u, _, _ := repo.GetByID(t.Context(), "user-1")
	u.IsActive = false
	_ = repo.Update(t.Context(), u)
	if _, err := service.Login(t.Context(), "fan@example.com", "secret1"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("inactive user: expected ErrUnauthorized, got %v", err)
	}
}

func TestAuthService_VerifyAccessToken(t *testing.T) {
	t.Parallel()

	service, _ := newTestAuthService()
	res, err := service.Register(t.Context(), RegisterInput{Email: "fan@example.com", Password: "secret1", FirstName: "A", LastName: "B"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	principal, err := service.VerifyAccessToken(t.Context(), res.Token)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if principal.UserID != "user-1" || principal.Email != "fan@example.com" {
		t.Fatalf("unexpected principal: %+v", principal)
	}

	if _, err := service.VerifyAccessToken(t.Context(), "garbage"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if _, err := service.VerifyAccessToken(t.Context(), "token:ghost:user"); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for unknown user, got %v", err)
	}
}

func TestUserService_HidesPasswordHash(t *testing.T) {
	t.Parallel()

	auth, repo := newTestAuthService()
	if _, err := auth.Register(t.Context(), RegisterInput{Email: "fan@example.com", Password: "secret1", FirstName: "A", LastName: "B"}); err != nil {
		t.Fatalf("register: %v", err)
	}
	service := NewUserService(repo)

	listed, err := service.List(t.Context())
	if err != nil || len(listed) != 1 {
		t.Fatalf("list users: n=%d err=%v", len(listed), err)
	}
	if listed[0].PasswordHash != "" {
		t.Fatalf("list leaked password hash")
	}

	admin := user.RoleAdmin
	updated, err := service.Update(t.Context(), "user-1", user.Patch{Role: &admin})
	if err != nil {
		t.Fatalf("update user: %v", err)
	}
	if updated.PasswordHash != "" || updated.Role != user.RoleAdmin {
		t.Fatalf("unexpected updated user: %+v", updated)
	}
	stored, _, _ := repo.GetByID(t.Context(), "user-1")
	if stored.PasswordHash == "" {
		t.Fatalf("update must keep the stored hash")
	}

	if _, err := service.Get(t.Context(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
