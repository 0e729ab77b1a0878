package ports

import (
	"context"
	"time"

	"github.com/marketline/commerce-system/internal/core/domain"
)

// OrderItemInput is a single product line on an order request.
type OrderItemInput struct {
	ProductID string
	Quantity  int
	Price     float64
}

// CreateOrderInput carries all data needed to place an order. Actor is the
// authenticated caller; when the actor is a SALESPERSON the order is linked
// to the actor regardless of the SalespersonID supplied in the body.
type CreateOrderInput struct {
	ShopID         string
	SalespersonID  string
	DistributorID  string
	TotalAmount    float64
	Notes          string
	Items          []OrderItemInput
	IdempotencyKey string
	Actor          domain.Identity
}

// OrderResult is returned by the service after placing an order.
type OrderResult struct {
	OrderNumber string
	Status      string
	TotalAmount float64
	CreatedAt   time.Time
	// AlreadyExisted is true when the idempotency key matched a previous order.
	AlreadyExisted bool
}

// OrderService defines use-case operations for orders.
type OrderService interface {
	CreateOrder(ctx context.Context, input CreateOrderInput) (*OrderResult, error)
}
