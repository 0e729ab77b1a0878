package ports

import (
	"context"

	"github.com/marketline/commerce-system/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
// Create must map a duplicate sku to domain.ErrProductExists via a store
// uniqueness constraint.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindBySKU(ctx context.Context, sku string) (*domain.Product, error)
}
