package ports

import (
	"context"

	"github.com/marketline/commerce-system/internal/core/domain"
)

// UserRepository defines the interface for credential persistence.
// Create must be atomic with respect to email uniqueness: two concurrent
// creates for the same email yield exactly one success and one
// domain.ErrUserExists (enforced by the store, not check-then-act).
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
