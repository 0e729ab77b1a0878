package ports

import (
	"context"

	"github.com/marketline/commerce-system/internal/core/domain"
)

// CreateShopInput carries all data needed to register a shop. Actor is the
// authenticated identity of the caller; the service links the shop to the
// actor only when the actor holds the SALESPERSON role.
type CreateShopInput struct {
	Name      string
	OwnerName string
	GSTNumber string
	PANNumber string
	Phone     string
	Email     string
	Address   string
	City      string
	State     string
	Pincode   string
	Actor     domain.Identity
}

// ShopService defines use-case operations for shops.
type ShopService interface {
	CreateShop(ctx context.Context, input CreateShopInput) (*domain.Shop, error)
}
