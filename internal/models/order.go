package models

import (
	"fmt"
	"math"
	"time"
)

// MaxOrderQuantity bounds the units a single order may hold. It also keeps
// quantities inside the range of the INTEGER quantity column.
const MaxOrderQuantity = 100

// OrderView is an order enriched with its menu item's display name
type OrderView struct {
	ID         int       `json:"id"`
	UserName   string    `json:"user_name"`
	MenuID     int       `json:"menu_id"`
	MenuName   string    `json:"menu_name"`
	Quantity   int       `json:"quantity"`
	TotalPrice int64     `json:"total_price"`
	OrderedAt  time.Time `json:"ordered_at"`
}

// CreateOrderRequest represents the request to create a new order
type CreateOrderRequest struct {
	UserName string `json:"user_name"`
	MenuID   int    `json:"menu_id"`
	Quantity int    `json:"quantity"`
}

// Validate validates the create order request
func (req *CreateOrderRequest) Validate() error {
	if req.UserName == "" {
		return ValidationError{
			Field:   "user_name",
			Message: "user name is required",
		}
	}
	if len(req.UserName) > 255 {
		return ValidationError{
			Field:   "user_name",
			Message: "user name must not exceed 255 characters",
		}
	}
	if req.MenuID <= 0 {
		return ValidationError{
			Field:   "menu_id",
			Message: "menu id must be greater than 0",
		}
	}
	if req.Quantity <= 0 {
		return ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than 0",
		}
	}
	if req.Quantity > MaxOrderQuantity {
		return ValidationError{
			Field:   "quantity",
			Message: fmt.Sprintf("quantity must not exceed %d", MaxOrderQuantity),
		}
	}
	return nil
}

// ComputeTotalPrice calculates price * quantity, rejecting products that
// would overflow int64.
func ComputeTotalPrice(price int64, quantity int) (int64, error) {
	if price <= 0 {
		return 0, ValidationError{
			Field:   "price",
			Message: "price must be greater than 0",
		}
	}
	if quantity <= 0 {
		return 0, ValidationError{
			Field:   "quantity",
			Message: "quantity must be greater than 0",
		}
	}
	if int64(quantity) > math.MaxInt64/price {
		return 0, ValidationError{
			Field:   "quantity",
			Message: "total price exceeds the supported range",
		}
	}
	return price * int64(quantity), nil
}
