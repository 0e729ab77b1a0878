package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
)

// AuthService implements sign-up and sign-in. Email uniqueness is enforced
// by the repository's atomic create, so there is no check-then-act window
// between two concurrent sign-ups.
type AuthService struct {
	repo     ports.UserRepository
	codec    ports.TokenCodec
	tokenTTL time.Duration
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec ports.TokenCodec, tokenTTL time.Duration, log zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{repo: repo, codec: codec, tokenTTL: tokenTTL, log: log}
}

func (s *AuthService) SignUp(ctx context.Context, input ports.SignUpInput) (string, *domain.User, error) {
	if input.Name == "" || input.Email == "" || input.Password == "" {
		return "", nil, domain.ErrValidation
	}
	role, ok := domain.ParseRole(input.Role)
	if !ok {
		return "", nil, domain.ErrValidation
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		Phone:        input.Phone,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	tok, err := s.codec.Issue(created.Identity(), s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return tok, created, nil
}

func (s *AuthService) SignIn(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	tok, err := s.codec.Issue(user.Identity(), s.tokenTTL)
	if err != nil {
		return "", nil, err
	}

	return tok, user, nil
}
