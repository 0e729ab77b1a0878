package ports

import (
	"time"

	"github.com/marketline/commerce-system/internal/core/domain"
)

// TokenCodec issues and verifies signed identity tokens.
type TokenCodec interface {
	Issue(identity domain.Identity, ttl time.Duration) (string, error)
	Verify(token string) (domain.Identity, error)
}
