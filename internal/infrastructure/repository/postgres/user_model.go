package postgres

import (
	"time"

	"github.com/riskibarqy/football-portal/internal/domain/user"
)

var userColumns = []string{
	"id", "email", "password_hash", "first_name", "last_name", "username",
	"avatar", "is_active", "role", "created_at", "updated_at",
}

type userTableModel struct {
	ID           string    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	FirstName    string    `db:"first_name"`
	LastName     string    `db:"last_name"`
	Username     string    `db:"username"`
	Avatar       string    `db:"avatar"`
	IsActive     bool      `db:"is_active"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func newUserTableModel(u user.User) userTableModel {
	return userTableModel{
		ID:           u.ID,
		Email:        user.NormalizeEmail(u.Email),
		PasswordHash: u.PasswordHash,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Username:     u.Username,
		Avatar:       u.Avatar,
		IsActive:     u.IsActive,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt.UTC(),
		UpdatedAt:    u.UpdatedAt.UTC(),
	}
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		FirstName:    m.FirstName,
		LastName:     m.LastName,
		Username:     m.Username,
		Avatar:       m.Avatar,
		IsActive:     m.IsActive,
		Role:         user.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}
