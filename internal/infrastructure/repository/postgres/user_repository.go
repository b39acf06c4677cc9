package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/football-portal/internal/domain/user"
	qb "github.com/riskibarqy/football-portal/internal/platform/querybuilder"
)

const usersTable = "users"

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) List(ctx context.Context) ([]user.User, error) {
	query, args, err := qb.Select(userColumns...).From(usersTable).
		OrderBy("created_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select users query: %w", err)
	}

	var rows []userTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select users: %w", err)
	}

	out := make([]user.User, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by id", qb.Eq("id", id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, bool, error) {
	return r.getOne(ctx, "get user by email", qb.Eq("email", user.NormalizeEmail(email)))
}

func (r *UserRepository) getOne(ctx context.Context, op string, cond qb.Condition) (user.User, bool, error) {
	query, args, err := qb.Select(userColumns...).From(usersTable).
		Where(cond).
		Limit(1).
		ToSQL()
	if err != nil {
		return user.User{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row userTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return user.User{}, false, nil
		}
		return user.User{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	query, args, err := qb.InsertModel(usersTable, newUserTableModel(u), "")
	if err != nil {
		return fmt.Errorf("build insert user query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return writeError("insert user", err)
	}
	return nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) error {
	query, args, err := qb.UpdateModel(usersTable, newUserTableModel(u), "id")
	if err != nil {
		return fmt.Errorf("build update user query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return writeError("update user", err)
	}
	return requireAffected("update user", result)
}

func (r *UserRepository) Delete(ctx context.Context, id string) error {
	query, args, err := qb.DeleteFrom(usersTable).Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build delete user query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return requireAffected("delete user", result)
}
