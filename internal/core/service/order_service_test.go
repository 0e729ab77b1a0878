package service

import (
	"context"
	"strings"
	"testing"

	"github.com/marketline/commerce-system/internal/core/domain"
	"github.com/marketline/commerce-system/internal/core/ports"
)

type stubOrderRepo struct {
	byNumber map[string]*domain.Order
}

func newStubOrderRepo() *stubOrderRepo {
	return &stubOrderRepo{byNumber: make(map[string]*domain.Order)}
}

func (r *stubOrderRepo) Create(_ context.Context, o *domain.Order) (*domain.Order, error) {
	clone := *o
	clone.ID = "ord-" + o.OrderNumber
	r.byNumber[o.OrderNumber] = &clone
	return &clone, nil
}

func (r *stubOrderRepo) FindByOrderNumber(_ context.Context, number string) (*domain.Order, error) {
	if o, ok := r.byNumber[number]; ok {
		clone := *o
		return &clone, nil
	}
	return nil, domain.ErrOrderNotFound
}

type stubIdemChecker struct {
	keys map[string]string
}

func newStubIdemChecker() *stubIdemChecker {
	return &stubIdemChecker{keys: make(map[string]string)}
}

func (s *stubIdemChecker) Existing(_ context.Context, key string) (string, error) {
	return s.keys[key], nil
}

func (s *stubIdemChecker) Remember(_ context.Context, key, orderNumber string) error {
	s.keys[key] = orderNumber
	return nil
}

func validOrderInput(actor domain.Identity) ports.CreateOrderInput {
	return ports.CreateOrderInput{
		ShopID:        "shop-1",
		SalespersonID: "sp-body",
		DistributorID: "dist-1",
		TotalAmount:   150,
		Items: []ports.OrderItemInput{
			{ProductID: "prod-1", Quantity: 3, Price: 50},
		},
		Actor: actor,
	}
}

func TestOrderService_Create_Success(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubIdemChecker(), testLogger())

	res, err := svc.CreateOrder(context.Background(), validOrderInput(domain.Identity{ID: "adm-1", Role: domain.RoleAdmin}))
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	if !strings.HasPrefix(res.OrderNumber, "ORD-") {
		t.Fatalf("unexpected order number: %s", res.OrderNumber)
	}
	if res.Status != string(domain.OrderPending) {
		t.Fatalf("expected PENDING, got %s", res.Status)
	}
	if res.AlreadyExisted {
		t.Fatalf("fresh order must not be flagged as replay")
	}
}

func TestOrderService_Create_SalespersonOverridesBodyLink(t *testing.T) {
	repo := newStubOrderRepo()
	svc := NewOrderService(repo, nil, testLogger())

	res, err := svc.CreateOrder(context.Background(), validOrderInput(domain.Identity{ID: "sp-1", Role: domain.RoleSalesperson}))
	if err != nil {
		t.Fatalf("CreateOrder returned error: %v", err)
	}
	created := repo.byNumber[res.OrderNumber]
	if created.SalespersonID != "sp-1" {
		t.Fatalf("expected order linked to the authenticated salesperson, got %q", created.SalespersonID)
	}
}

func TestOrderService_Create_Validation(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), nil, testLogger())
	actor := domain.Identity{ID: "adm-1", Role: domain.RoleAdmin}

	in := validOrderInput(actor)
	in.Items = nil
	if _, err := svc.CreateOrder(context.Background(), in); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for empty items, got %v", err)
	}

	in = validOrderInput(actor)
	in.Items[0].Quantity = 0
	if _, err := svc.CreateOrder(context.Background(), in); err != domain.ErrInvalidItem {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}

	in = validOrderInput(actor)
	in.DistributorID = ""
	if _, err := svc.CreateOrder(context.Background(), in); err != domain.ErrValidation {
		t.Fatalf("expected ErrValidation for missing distributor, got %v", err)
	}
}

func TestOrderService_Create_IdempotentReplay(t *testing.T) {
	svc := NewOrderService(newStubOrderRepo(), newStubIdemChecker(), testLogger())
	actor := domain.Identity{ID: "adm-1", Role: domain.RoleAdmin}

	in := validOrderInput(actor)
	in.IdempotencyKey = "req-1"

	first, err := svc.CreateOrder(context.Background(), in)
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	second, err := svc.CreateOrder(context.Background(), in)
	if err != nil {
		t.Fatalf("replay failed: %v", err)
	}
	if !second.AlreadyExisted {
		t.Fatalf("expected replay to be flagged")
	}
	if second.OrderNumber != first.OrderNumber {
		t.Fatalf("replay returned a different order: %s vs %s", second.OrderNumber, first.OrderNumber)
	}
}
