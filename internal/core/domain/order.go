package domain

import (
	"errors"
	"time"
)

// OrderStatus represents the lifecycle state of an order.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderDelivered OrderStatus = "DELIVERED"
	OrderCancelled OrderStatus = "CANCELLED"
)

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrInvalidItem   = errors.New("invalid order item")
)

// OrderItem is a single product line on an order.
type OrderItem struct {
	ProductID string  `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// Order ties a shop, a salesperson and a distributor together with the
// ordered items. New orders always start in PENDING.
type Order struct {
	ID            string      `json:"id"`
	OrderNumber   string      `json:"order_number"`
	ShopID        string      `json:"shop_id"`
	SalespersonID string      `json:"salesperson_id"`
	DistributorID string      `json:"distributor_id"`
	TotalAmount   float64     `json:"total_amount"`
	Notes         string      `json:"notes,omitempty"`
	Status        OrderStatus `json:"status"`
	Items         []OrderItem `json:"items"`
	CreatedAt     time.Time   `json:"created_at"`
}
