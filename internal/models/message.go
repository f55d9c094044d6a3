package models

import "time"

// OrderCreatedMessage represents a notification published after an order
// has been committed.
type OrderCreatedMessage struct {
	OrderID    int       `json:"order_id"`
	UserName   string    `json:"user_name"`
	MenuID     int       `json:"menu_id"`
	MenuName   string    `json:"menu_name"`
	Quantity   int       `json:"quantity"`
	TotalPrice int64     `json:"total_price"`
	OrderedAt  time.Time `json:"ordered_at"`
}

// OrderCreatedMessageFromView creates an OrderCreatedMessage from an order view
func OrderCreatedMessageFromView(view *OrderView) *OrderCreatedMessage {
	return &OrderCreatedMessage{
		OrderID:    view.ID,
		UserName:   view.UserName,
		MenuID:     view.MenuID,
		MenuName:   view.MenuName,
		Quantity:   view.Quantity,
		TotalPrice: view.TotalPrice,
		OrderedAt:  view.OrderedAt,
	}
}
