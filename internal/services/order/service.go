package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"bento-order-system/internal/database"
	"bento-order-system/internal/logger"
	"bento-order-system/internal/models"
)

// Service validates and creates orders against the menu catalog
type Service struct {
	db       *database.DB
	notifier Notifier
	logger   *logger.Logger
}

// NewService creates a new order service. notifier may be nil when no broker
// is configured.
func NewService(db *database.DB, notifier Notifier, log *logger.Logger) *Service {
	return &Service{
		db:       db,
		notifier: notifier,
		logger:   log,
	}
}

// Create validates the request, computes the total and inserts the order.
// The menu lookup, the insert and the read-back of the enriched view all run
// in one transaction; any failure rolls the whole order back.
func (s *Service) Create(ctx context.Context, req *models.CreateOrderRequest, requestID string) (*models.OrderView, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		s.logger.Error("db_tx_failed", "Failed to start transaction", requestID, err, nil)
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer tx.Rollback(ctx)

	var menu models.MenuItem
	err = tx.QueryRow(ctx, database.GetMenuByIDSQL, req.MenuID).Scan(
		&menu.ID, &menu.Name, &menu.Price, &menu.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.MenuNotFoundError{MenuID: req.MenuID}
		}
		s.logger.Error("db_query_failed", "Failed to look up menu", requestID, err, map[string]interface{}{
			"menu_id": req.MenuID,
		})
		return nil, fmt.Errorf("database error: %w", err)
	}

	total, err := models.ComputeTotalPrice(menu.Price, req.Quantity)
	if err != nil {
		return nil, err
	}

	view := &models.OrderView{
		UserName:   req.UserName,
		MenuID:     menu.ID,
		MenuName:   menu.Name,
		Quantity:   req.Quantity,
		TotalPrice: total,
	}

	err = tx.QueryRow(ctx, database.InsertOrderSQL,
		req.UserName, req.MenuID, req.Quantity, total).Scan(&view.ID, &view.OrderedAt)
	if err != nil {
		s.logger.Error("db_insert_failed", "Failed to insert order", requestID, err, map[string]interface{}{
			"menu_id": req.MenuID,
		})
		return nil, fmt.Errorf("database error: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		s.logger.Error("db_commit_failed", "Failed to commit order", requestID, err, nil)
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Best effort: a publish failure must not fail the committed order.
	if s.notifier != nil {
		msg := models.OrderCreatedMessageFromView(view)
		if err := s.notifier.PublishOrderCreated(ctx, msg); err != nil {
			s.logger.Error("notification_failed", "Failed to publish order created event", requestID, err, map[string]interface{}{
				"order_id": view.ID,
			})
		}
	}

	return view, nil
}

// ListAll returns all orders, most recent first, with menu names resolved in
// a single join. Orders whose menu row is missing get the "unknown" placeholder.
func (s *Service) ListAll(ctx context.Context, requestID string) ([]models.OrderView, error) {
	rows, err := s.db.Query(ctx, database.ListOrderViewsSQL)
	if err != nil {
		s.logger.Error("db_query_failed", "Failed to query orders", requestID, err, nil)
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	var views []models.OrderView
	for rows.Next() {
		var view models.OrderView
		err := rows.Scan(
			&view.ID,
			&view.UserName,
			&view.MenuID,
			&view.MenuName,
			&view.Quantity,
			&view.TotalPrice,
			&view.OrderedAt,
		)
		if err != nil {
			s.logger.Error("db_scan_failed", "Failed to scan order row", requestID, err, nil)
			return nil, fmt.Errorf("database error: %w", err)
		}
		views = append(views, view)
	}

	if err = rows.Err(); err != nil {
		s.logger.Error("db_rows_failed", "Error iterating order rows", requestID, err, nil)
		return nil, fmt.Errorf("database error: %w", err)
	}

	return views, nil
}

// HealthCheck checks the health of dependencies
func (s *Service) HealthCheck(ctx context.Context) bool {
	if err := s.db.Ping(ctx); err != nil {
		s.logger.Error("health_check_failed", "Database ping failed", "", err, nil)
		return false
	}
	return true
}
