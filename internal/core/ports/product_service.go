package ports

import (
	"context"

	"github.com/marketline/commerce-system/internal/core/domain"
)

// CreateProductInput carries all data needed to create a catalog product.
// AdminID is taken from the authenticated identity, never from the body.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Stock       int
	SKU         string
	Images      []string
	AdminID     string
}

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, input CreateProductInput) (*domain.Product, error)
}
