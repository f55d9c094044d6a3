package menu

import (
	"context"
	"fmt"

	"bento-order-system/internal/database"
	"bento-order-system/internal/logger"
	"bento-order-system/internal/models"
)

// Service provides read access to the menu catalog
type Service struct {
	db     *database.DB
	logger *logger.Logger
}

// NewService creates a new menu catalog service
func NewService(db *database.DB, log *logger.Logger) *Service {
	return &Service{
		db:     db,
		logger: log,
	}
}

// List returns all catalog entries
func (s *Service) List(ctx context.Context, requestID string) ([]models.MenuItem, error) {
	rows, err := s.db.Query(ctx, database.ListMenusSQL)
	if err != nil {
		s.logger.Error("db_query_failed", "Failed to query menus", requestID, err, nil)
		return nil, fmt.Errorf("database error: %w", err)
	}
	defer rows.Close()

	var menus []models.MenuItem
	for rows.Next() {
		var item models.MenuItem
		err := rows.Scan(&item.ID, &item.Name, &item.Price, &item.Description)
		if err != nil {
			s.logger.Error("db_scan_failed", "Failed to scan menu row", requestID, err, nil)
			return nil, fmt.Errorf("database error: %w", err)
		}
		menus = append(menus, item)
	}

	if err = rows.Err(); err != nil {
		s.logger.Error("db_rows_failed", "Error iterating menu rows", requestID, err, nil)
		return nil, fmt.Errorf("database error: %w", err)
	}

	return menus, nil
}

// SeedIfEmpty inserts the given defaults when the catalog has no rows.
// The empty check and the inserts run in one transaction under an exclusive
// table lock, so concurrent callers cannot double-seed.
func (s *Service) SeedIfEmpty(ctx context.Context, defaults []models.MenuItemDraft) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, database.LockMenusTableSQL); err != nil {
		return fmt.Errorf("failed to lock menus table: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx, database.CountMenusSQL).Scan(&count); err != nil {
		return fmt.Errorf("failed to count menus: %w", err)
	}

	if count > 0 {
		s.logger.Debug("catalog_seed_skipped", fmt.Sprintf("Catalog already has %d entries", count), "startup", nil)
		return nil
	}

	for _, draft := range defaults {
		if _, err := tx.Exec(ctx, database.InsertMenuSQL, draft.Name, draft.Price, draft.Description); err != nil {
			return fmt.Errorf("failed to insert menu %q: %w", draft.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}

	s.logger.Info("catalog_seeded", fmt.Sprintf("Seeded %d default menu entries", len(defaults)), "startup", nil)
	return nil
}
