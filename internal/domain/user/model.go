package user

import (
	"fmt"
	"net/mail"
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Username     string
	Avatar       string
	IsActive     bool
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u User) Validate() error {
	if u.ID == "" {
		return fmt.Errorf("user id is required")
	}
	if _, err := mail.ParseAddress(u.Email); err != nil || u.Email != NormalizeEmail(u.Email) {
		return fmt.Errorf("user email %q is invalid", u.Email)
	}
	if u.PasswordHash == "" {
		return fmt.Errorf("user password hash is required")
	}
	if strings.TrimSpace(u.FirstName) == "" || strings.TrimSpace(u.LastName) == "" {
		return fmt.Errorf("user first and last name are required")
	}
	if !u.Role.Valid() {
		return fmt.Errorf("user role %q is invalid", u.Role)
	}
	return nil
}

// Profile is the public view of a user.
type Profile struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

func (u User) Profile() Profile {
	return Profile{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
	}
}

// Principal is the authenticated caller carried through a request.
type Principal struct {
	UserID string
	Email  string
	Role   Role
}

func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// NormalizeEmail lowercases and trims an address so uniqueness is
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type Patch struct {
	FirstName *string
	LastName  *string
	Username  *string
	Avatar    *string
	IsActive  *bool
	Role      *Role
}

func (p Patch) Apply(u *User) {
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.Username != nil {
		u.Username = *p.Username
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.IsActive != nil {
		u.IsActive = *p.IsActive
	}
	if p.Role != nil {
		u.Role = *p.Role
	}
}
