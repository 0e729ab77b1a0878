package domain

import (
	"errors"
	"time"
)

var (
	ErrProductExists   = errors.New("product with this sku already exists")
	ErrProductNotFound = errors.New("product not found")
)

// Product is a catalog entry created by an admin.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Stock       int       `json:"stock"`
	SKU         string    `json:"sku"`
	Images      []string  `json:"images"`
	AdminID     string    `json:"admin_id"`
	CreatedAt   time.Time `json:"created_at"`
}
