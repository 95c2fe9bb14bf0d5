package db

import (
	"gorm.io/gorm"

	"github.com/diewo77/go-billing/internal/models"
)

// Migrate runs AutoMigrate for all models.
// Call this at application startup or as part of a migration step.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Client{},
		&models.Product{},
		&models.Invoice{},
		&models.InvoiceItem{},
	)
}
