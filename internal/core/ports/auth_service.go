package ports

import (
	"context"

	"github.com/marketline/commerce-system/internal/core/domain"
)

// SignUpInput carries the profile fields required to register an account.
type SignUpInput struct {
	Name     string
	Email    string
	Password string
	Role     string
	Phone    string
}

// AuthService implements credential verification and token issuance.
type AuthService interface {
	SignUp(ctx context.Context, input SignUpInput) (string, *domain.User, error)
	SignIn(ctx context.Context, email, password string) (string, *domain.User, error)
}
