package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
)

// IdempotencyChecker abstracts the order idempotency store (Redis).
type IdempotencyChecker interface {
	// Existing returns the order number previously recorded for key, or ""
	// when the key has not been seen.
	Existing(ctx context.Context, key string) (string, error)
	Remember(ctx context.Context, key, orderNumber string) error
}

// OrderService implements order placement with idempotency-key replay.
type OrderService struct {
	repo ports.OrderRepository
	idem IdempotencyChecker
	log  zerolog.Logger
}

func NewOrderService(repo ports.OrderRepository, idem IdempotencyChecker, log zerolog.Logger) *OrderService {
	return &OrderService{repo: repo, idem: idem, log: log}
}

// CreateOrder places a new order. A request replaying a known idempotency
// key returns the original order without side effects.
func (s *OrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	if input.ShopID == "" || input.TotalAmount <= 0 || len(input.Items) == 0 {
		return nil, domain.ErrValidation
	}
	for _, item := range input.Items {
		if item.ProductID == "" || item.Quantity <= 0 || item.Price <= 0 {
			return nil, domain.ErrInvalidItem
		}
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		number, err := s.idem.Existing(ctx, input.IdempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("key", input.IdempotencyKey).Msg("idempotency check failed, processing anyway")
		} else if number != "" {
			existing, err := s.repo.FindByOrderNumber(ctx, number)
			if err != nil {
				return nil, fmt.Errorf("idempotent replay: %w", err)
			}
			s.log.Info().Str("key", input.IdempotencyKey).Str("order_number", number).Msg("idempotent replay")
			return &ports.OrderResult{
				OrderNumber:    existing.OrderNumber,
				Status:         string(existing.Status),
				TotalAmount:    existing.TotalAmount,
				CreatedAt:      existing.CreatedAt,
				AlreadyExisted: true,
			}, nil
		}
	}

	salespersonID := input.SalespersonID
	// The authenticated salesperson always owns the orders they place; the
	// body's salesperson_id only matters for admins placing on behalf.
	if input.Actor.Role == domain.RoleSalesperson {
		salespersonID = input.Actor.ID
	}
	if salespersonID == "" || input.DistributorID == "" {
		return nil, domain.ErrValidation
	}

	items := make([]domain.OrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, domain.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order := &domain.Order{
		OrderNumber:   generateOrderNumber(),
		ShopID:        input.ShopID,
		SalespersonID: salespersonID,
		DistributorID: input.DistributorID,
		TotalAmount:   input.TotalAmount,
		Notes:         input.Notes,
		Status:        domain.OrderPending,
		Items:         items,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, order)
	if err != nil {
		s.log.Error().Err(err).Msg("failed to create order")
		return nil, err
	}

	if input.IdempotencyKey != "" && s.idem != nil {
		if err := s.idem.Remember(ctx, input.IdempotencyKey, created.OrderNumber); err != nil {
			s.log.Warn().Err(err).Str("key", input.IdempotencyKey).Msg("failed to record idempotency key")
		}
	}

	s.log.Info().
		Str("order_number", created.OrderNumber).
		Str("shop_id", created.ShopID).
		Str("salesperson_id", created.SalespersonID).
		Msg("order created")

	return &ports.OrderResult{
		OrderNumber: created.OrderNumber,
		Status:      string(created.Status),
		TotalAmount: created.TotalAmount,
		CreatedAt:   created.CreatedAt,
	}, nil
}

// generateOrderNumber returns a unique order number in the format ORD-XXXXXXXX.
func generateOrderNumber() string {
	id := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))
	return "ORD-" + id[:8]
}
