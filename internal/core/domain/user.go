package domain

import (
	"errors"
	"time"
)

// Role determines both server-side authorization and client-side routing.
// Roles form a closed set with no hierarchy: ADMIN is not a superset of
// SALESPERSON except where an allowed-role set explicitly includes both.
type Role string

const (
	RoleAdmin       Role = "ADMIN"
	RoleSalesperson Role = "SALESPERSON"
	RoleDistributor Role = "DISTRIBUTOR"
)

// ParseRole returns the Role matching s, or false when s is not one of the
// three known roles.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleAdmin, RoleSalesperson, RoleDistributor:
		return Role(s), true
	}
	return "", false
}

// Identity is the authenticated subject derived from a verified token.
// Immutable once decoded.
type Identity struct {
	ID   string `json:"id"`
	Role Role   `json:"role"`
}

// User models a registered account. The password hash never leaves the
// persistence boundary in API responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Phone        string    `json:"phone,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Identity returns the token-embeddable view of the user.
func (u *User) Identity() Identity {
	return Identity{ID: u.ID, Role: u.Role}
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrValidation         = errors.New("missing or invalid fields")
	ErrForbidden          = errors.New("access forbidden")
)
