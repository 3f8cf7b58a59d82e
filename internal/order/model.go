package order

import (
	"time"

	"maison-storefront/internal/cart"
)

type Status string

const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusShipped    Status = "shipped"
	StatusDelivered  Status = "delivered"
	StatusCancelled  Status = "cancelled"
)

// IsValidStatus reports enum membership only. There is deliberately no
// transition graph: the server accepts any status after any other.
func IsValidStatus(status Status) bool {
	switch status {
	case StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	default:
		return false
	}
}

type Order struct {
	ID       string      `json:"id"`
	Customer string      `json:"customer"`
	Email    string      `json:"email"`
	Items    []cart.Item `json:"items"`
	Total    int64       `json:"total"`
	Status   Status      `json:"status"`
	Date     time.Time   `json:"date"`
	Address  string      `json:"address"`
}
