package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product or service that can be placed on an invoice.
// Implements the Ownable interface for ownership-based scoping.
type Product struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// UserID is the owner of this product (multi-tenant isolation)
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	Name        string          `gorm:"size:255;not null" json:"name"`
	Description string          `gorm:"type:text" json:"description,omitempty"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Unit        string          `gorm:"size:50;default:'vnt'" json:"unit"` // vnt, val, kg, ...
}

// GetUserID implements the Ownable interface.
func (p *Product) GetUserID() uint {
	return p.UserID
}
