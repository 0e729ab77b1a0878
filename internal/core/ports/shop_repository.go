package ports

import (
	"context"

	"github.com/marketline/commerce-system/internal/core/domain"
)

// ShopRepository defines persistence operations for shops.
type ShopRepository interface {
	Create(ctx context.Context, s *domain.Shop) (*domain.Shop, error)
}
