package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/football-portal/internal/domain/user"
)

type UserRepository struct {
	rows *table[user.User]
}

func NewUserRepository(items []user.User) *UserRepository {
	rows := newTable(
		func(u user.User) string { return u.ID },
		func(u user.User) string { return user.NormalizeEmail(u.Email) },
	)
	rows.seed(items)
	return &UserRepository{rows: rows}
}

func (r *UserRepository) List(_ context.Context) ([]user.User, error) {
	out := r.rows.filter(nil)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *UserRepository) GetByID(_ context.Context, id string) (user.User, bool, error) {
	u, ok := r.rows.get(id)
	return u, ok, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (user.User, bool, error) {
	want := user.NormalizeEmail(email)
	u, ok := r.rows.find(func(u user.User) bool { return user.NormalizeEmail(u.Email) == want })
	return u, ok, nil
}

func (r *UserRepository) Create(_ context.Context, u user.User) error {
	return r.rows.insert(u)
}

func (r *UserRepository) Update(_ context.Context, u user.User) error {
	return r.rows.update(u)
}

func (r *UserRepository) Delete(_ context.Context, id string) error {
	return r.rows.delete(id)
}
