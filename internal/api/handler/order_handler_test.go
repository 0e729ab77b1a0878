package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
)

type stubOrderService struct {
	createFn func(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error)
}

func (s *stubOrderService) CreateOrder(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
	return s.createFn(ctx, input)
}

const orderBody = `{
	"shop_id": "shop_1",
	"distributor_id": "dist_1",
	"total_amount": 150.5,
	"items": [{"product_id": "prod_1", "quantity": 3, "price": 50.16}]
}`

func TestOrderHandler_Create_Success(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
			if input.Actor.Role != domain.RoleSalesperson {
				t.Fatalf("unexpected actor: %+v", input.Actor)
			}
			if input.IdempotencyKey != "key-1" {
				t.Fatalf("unexpected idempotency key: %q", input.IdempotencyKey)
			}
			return &ports.OrderResult{
				OrderNumber: "ORD-AB12CD34",
				Status:      string(domain.OrderPending),
				TotalAmount: input.TotalAmount,
				CreatedAt:   time.Now(),
			}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/salesperson/orders", orderBody)
	c.Request().Header.Set("Idempotency-Key", "key-1")
	c.Set("identity", domain.Identity{ID: "u1", Role: domain.RoleSalesperson})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestOrderHandler_Create_ReplayReturns200(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
			return &ports.OrderResult{
				OrderNumber:    "ORD-AB12CD34",
				Status:         string(domain.OrderPending),
				TotalAmount:    input.TotalAmount,
				CreatedAt:      time.Now(),
				AlreadyExisted: true,
			}, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, rec := newTestContext(http.MethodPost, "/salesperson/orders", orderBody)
	c.Request().Header.Set("Idempotency-Key", "key-1")
	c.Set("identity", domain.Identity{ID: "u1", Role: domain.RoleSalesperson})

	if err := handler.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestOrderHandler_Create_MissingIdentity(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	c, _ := newTestContext(http.MethodPost, "/salesperson/orders", orderBody)

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 error, got %v", err)
	}
}

func TestOrderHandler_Create_EmptyItemsRejected(t *testing.T) {
	stub := &stubOrderService{
		createFn: func(ctx context.Context, input ports.CreateOrderInput) (*ports.OrderResult, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewOrderHandler(stub)

	body := `{"shop_id":"shop_1","distributor_id":"dist_1","total_amount":10,"items":[]}`
	c, _ := newTestContext(http.MethodPost, "/salesperson/orders", body)
	c.Set("identity", domain.Identity{ID: "u1", Role: domain.RoleAdmin})

	err := handler.Create(c)
	var httpErr *echo.HTTPError
	if !errors.As(err, &httpErr) || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 error, got %v", err)
	}
}
