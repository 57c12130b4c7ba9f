package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/smotired/bulletinator/internal/domain"
)

// AutoMigrate runs GORM auto-migration for all domain models. Ordering matters:
// referenced tables are created before the tables that point at them.
func AutoMigrate(db *gorm.DB) error {
	models := []interface{}{
		&domain.Account{},
		&domain.Customer{},
		&domain.Board{},
		&domain.BoardEditor{},
		&domain.Item{},
		&domain.TodoItem{},
		&domain.Pin{},
		&domain.PinConnection{},
		&domain.Report{},
	}

	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("failed to run auto-migration: %w", err)
	}

	return nil
}
