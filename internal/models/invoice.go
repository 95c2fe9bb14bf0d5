package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the payment status of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusUnpaid  InvoiceStatus = "unpaid"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Valid reports whether s is one of the known statuses.
func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusUnpaid, InvoiceStatusPaid, InvoiceStatusOverdue:
		return true
	}
	return false
}

// DiscountType determines how an item's DiscountValue is interpreted.
type DiscountType string

const (
	DiscountNone    DiscountType = "none"
	DiscountFixed   DiscountType = "fixed"   // absolute currency amount
	DiscountPercent DiscountType = "percent" // 0-100 percentage of the raw line amount
)

// Valid reports whether t is a known discount type. The empty string is
// accepted and treated as DiscountNone.
func (t DiscountType) Valid() bool {
	switch t {
	case "", DiscountNone, DiscountFixed, DiscountPercent:
		return true
	}
	return false
}

// Invoice is an invoice header. Subtotal, VATAmount, and Total are derived
// from the items plus ShippingPrice and stored with 2-decimal precision.
// Implements the Ownable interface for ownership-based scoping.
type Invoice struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// UserID is the owner of this invoice (multi-tenant isolation)
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	// Uniqueness of the number is not enforced; it is caller-supplied.
	Number string `gorm:"column:invoice_number;size:50;not null" json:"invoice_number"`

	ClientID uint    `gorm:"index;not null" json:"client_id"`
	Client   *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	InvoiceDate time.Time `gorm:"not null" json:"invoice_date"`
	DueDate     time.Time `gorm:"not null" json:"due_date"`

	ShippingPrice decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"shipping_price"`
	Subtotal      decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`
	VATAmount     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"vat_amount"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`

	Status InvoiceStatus `gorm:"size:20;not null;default:'unpaid'" json:"status"`

	Items []InvoiceItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items,omitempty"`

	// ClientName is resolved from the joined client for display.
	ClientName string `gorm:"-" json:"client_name,omitempty"`
}

// GetUserID implements the Ownable interface.
func (i *Invoice) GetUserID() uint {
	return i.UserID
}

// IsPaid returns true once the invoice has been settled.
func (i *Invoice) IsPaid() bool {
	return i.Status == InvoiceStatusPaid
}

// Outstanding returns true for invoices still awaiting payment.
func (i *Invoice) Outstanding() bool {
	return i.Status == InvoiceStatusUnpaid || i.Status == InvoiceStatusOverdue
}

// InvoiceItem is one line on an invoice. Items are exclusively owned by their
// invoice: the whole set is replaced on every update and removed with the
// invoice on delete.
type InvoiceItem struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InvoiceID uint     `gorm:"index;not null" json:"invoice_id"`
	Invoice   *Invoice `gorm:"foreignKey:InvoiceID" json:"-"`

	// Optional product reference (nil for free-form lines)
	ProductID *uint    `gorm:"index" json:"product_id,omitempty"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`

	Description   string          `gorm:"size:500;not null" json:"description"`
	Quantity      int             `gorm:"not null" json:"quantity"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	DiscountType  DiscountType    `gorm:"size:20;not null;default:'none'" json:"discount_type"`
	DiscountValue decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"discount_value"`
	LineTotal     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"line_total"`

	// ProductName is resolved from the joined product for display.
	ProductName string `gorm:"-" json:"product_name,omitempty"`
}
