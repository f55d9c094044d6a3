package order

import (
	"context"

	"bento-order-system/internal/models"
)

// OrderService is the order surface the HTTP handler depends on
type OrderService interface {
	Create(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.OrderView, error)
	ListAll(ctx context.Context, requestID string) ([]models.OrderView, error)
	HealthCheck(ctx context.Context) bool
}

// MenuService is the catalog surface the HTTP handler depends on
type MenuService interface {
	List(ctx context.Context, requestID string) ([]models.MenuItem, error)
}

// Notifier publishes order lifecycle events for downstream consumers
type Notifier interface {
	PublishOrderCreated(ctx context.Context, msg *models.OrderCreatedMessage) error
}
