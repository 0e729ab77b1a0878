package domain

import (
	"errors"
	"time"
)

var ErrShopNotFound = errors.New("shop not found")

// Shop is a retail outlet registered by a salesperson (or an admin acting
// on their behalf). SalespersonID is set only when the creator holds the
// SALESPERSON role; an admin-created shop has no salesperson link.
type Shop struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	OwnerName     string    `json:"owner_name"`
	GSTNumber     string    `json:"gst_number,omitempty"`
	PANNumber     string    `json:"pan_number,omitempty"`
	Phone         string    `json:"phone"`
	Email         string    `json:"email,omitempty"`
	Address       string    `json:"address"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Pincode       string    `json:"pincode"`
	SalespersonID string    `json:"salesperson_id,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
