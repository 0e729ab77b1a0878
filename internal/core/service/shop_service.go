package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
)

// ShopService implements shop registration.
type ShopService struct {
	repo ports.ShopRepository
	log  zerolog.Logger
}

func NewShopService(repo ports.ShopRepository, log zerolog.Logger) *ShopService {
	return &ShopService{repo: repo, log: log}
}

func (s *ShopService) CreateShop(ctx context.Context, input ports.CreateShopInput) (*domain.Shop, error) {
	if input.Name == "" || input.OwnerName == "" || input.Phone == "" ||
		input.Address == "" || input.City == "" || input.State == "" || input.Pincode == "" {
		return nil, domain.ErrValidation
	}

	shop := &domain.Shop{
		Name:      input.Name,
		OwnerName: input.OwnerName,
		GSTNumber: input.GSTNumber,
		PANNumber: input.PANNumber,
		Phone:     input.Phone,
		Email:     input.Email,
		Address:   input.Address,
		City:      input.City,
		State:     input.State,
		Pincode:   input.Pincode,
		CreatedAt: time.Now().UTC(),
	}
	// Only salespeople are linked to the shops they register; an admin
	// creating a shop leaves the link empty.
	if input.Actor.Role == domain.RoleSalesperson {
		shop.SalespersonID = input.Actor.ID
	}

	created, err := s.repo.Create(ctx, shop)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("shop_id", created.ID).Str("salesperson_id", created.SalespersonID).Msg("shop created")
	return created, nil
}
