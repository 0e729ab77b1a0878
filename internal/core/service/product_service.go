package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
)

// ProductService implements catalog use-cases. SKU uniqueness is enforced
// by the repository's unique index; a duplicate surfaces as
// domain.ErrProductExists.
type ProductService struct {
	repo ports.ProductRepository
	log  zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, log: log}
}

func (s *ProductService) CreateProduct(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Category == "" || input.SKU == "" || len(input.Images) == 0 {
		return nil, domain.ErrValidation
	}
	if input.Price <= 0 || input.Stock < 0 {
		return nil, domain.ErrValidation
	}
	if input.AdminID == "" {
		return nil, domain.ErrForbidden
	}

	product := &domain.Product{
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Stock:       input.Stock,
		SKU:         input.SKU,
		Images:      input.Images,
		AdminID:     input.AdminID,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("sku", created.SKU).Str("admin_id", created.AdminID).Msg("product created")
	return created, nil
}
