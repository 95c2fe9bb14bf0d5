package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/diewo77/go-billing/internal/models"
	"github.com/diewo77/go-billing/internal/pricing"
	"github.com/diewo77/go-billing/validation"
)

// ItemInput is one requested invoice line.
type ItemInput struct {
	ProductID     *uint
	Description   string
	Quantity      int
	Price         decimal.Decimal
	DiscountType  models.DiscountType
	DiscountValue decimal.Decimal
}

// InvoiceInput carries the caller-supplied header fields and item list for
// a create or update. Derived totals are never accepted from the caller.
type InvoiceInput struct {
	Number        string
	ClientID      uint
	InvoiceDate   time.Time
	DueDate       time.Time
	ShippingPrice decimal.Decimal
	Status        models.InvoiceStatus // applied on update; creation always starts unpaid
	Items         []ItemInput
}

var hundred = decimal.NewFromInt(100)

func (in InvoiceInput) validate() validation.Violations {
	v := make(validation.Violations)
	validation.Required("invoice_number", in.Number, v)
	if in.ClientID == 0 {
		v["client_id"] = "required"
	}
	if in.InvoiceDate.IsZero() {
		v["invoice_date"] = "required"
	}
	if in.DueDate.IsZero() {
		v["due_date"] = "required"
	}
	if in.Status != "" && !in.Status.Valid() {
		v["status"] = "invalid_value"
	}
	if in.Items == nil {
		v["items"] = "required"
	}
	for i, it := range in.Items {
		field := func(name string) string { return fmt.Sprintf("items[%d].%s", i, name) }
		validation.Required(field("description"), it.Description, v)
		validation.PositiveInt(field("quantity"), it.Quantity, v)
		if it.Price.IsNegative() {
			v[field("price")] = "must_not_be_negative"
		}
		if !it.DiscountType.Valid() {
			v[field("discount_type")] = "invalid_value"
		}
		if it.DiscountValue.IsNegative() {
			v[field("discount_value")] = "must_not_be_negative"
		}
		if it.DiscountType == models.DiscountPercent && it.DiscountValue.GreaterThan(hundred) {
			v[field("discount_value")] = "out_of_range"
		}
	}
	return v
}

// InvoiceService orchestrates invoice computation and persistence. Every
// write runs as one transaction: the header and the full item set either
// land together or not at all.
type InvoiceService struct {
	db *gorm.DB
}

func NewInvoiceService(db *gorm.DB) *InvoiceService {
	return &InvoiceService{db: db}
}

// Create validates the input, checks that the referenced client and products
// belong to userID, computes totals, and persists the header plus all items
// atomically. New invoices always start out unpaid; status changes go
// through Update.
func (s *InvoiceService) Create(ctx context.Context, userID uint, in InvoiceInput) (*models.Invoice, error) {
	if v := in.validate(); !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	inv := &models.Invoice{
		UserID:        userID,
		Number:        in.Number,
		ClientID:      in.ClientID,
		InvoiceDate:   in.InvoiceDate,
		DueDate:       in.DueDate,
		ShippingPrice: shippingOrZero(in.ShippingPrice),
		Status:        models.InvoiceStatusUnpaid,
	}
	items := buildItems(in.Items)
	applyTotals(inv, pricing.Compute(inv.ShippingPrice, items))

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := verifyReferences(tx, userID, in); err != nil {
			return err
		}
		if err := tx.Create(inv).Error; err != nil {
			return &PersistenceError{Op: "insert invoice", Err: err}
		}
		for i := range items {
			items[i].InvoiceID = inv.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return &PersistenceError{Op: "insert invoice items", Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify("create invoice", err)
	}
	inv.Items = items
	return inv, nil
}

// Update recomputes totals and replaces the invoice atomically: the header
// is rewritten and the previous item set is deleted before the new one is
// inserted. A missing or foreign invoice yields ErrNotFound.
func (s *InvoiceService) Update(ctx context.Context, userID, invoiceID uint, in InvoiceInput) (*models.Invoice, error) {
	if v := in.validate(); !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	var inv models.Invoice
	items := buildItems(in.Items)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", invoiceID, userID).First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return &PersistenceError{Op: "load invoice", Err: err}
		}
		if err := verifyReferences(tx, userID, in); err != nil {
			return err
		}

		inv.Number = in.Number
		inv.ClientID = in.ClientID
		inv.InvoiceDate = in.InvoiceDate
		inv.DueDate = in.DueDate
		inv.ShippingPrice = shippingOrZero(in.ShippingPrice)
		inv.Status = statusOrUnpaid(in.Status)
		applyTotals(&inv, pricing.Compute(inv.ShippingPrice, items))

		if err := tx.Save(&inv).Error; err != nil {
			return &PersistenceError{Op: "update invoice", Err: err}
		}
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return &PersistenceError{Op: "delete invoice items", Err: err}
		}
		for i := range items {
			items[i].InvoiceID = inv.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return &PersistenceError{Op: "insert invoice items", Err: err}
			}
		}
		return nil
	})
	if err != nil {
		return nil, classify("update invoice", err)
	}
	inv.Items = items
	return &inv, nil
}

// Delete removes the invoice and its items. Ownership is checked on the
// header only; items inherit it through their invoice.
func (s *InvoiceService) Delete(ctx context.Context, userID, invoiceID uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND user_id = ?", invoiceID, userID).First(&inv).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return &PersistenceError{Op: "load invoice", Err: err}
		}
		if err := tx.Where("invoice_id = ?", inv.ID).Delete(&models.InvoiceItem{}).Error; err != nil {
			return &PersistenceError{Op: "delete invoice items", Err: err}
		}
		if err := tx.Delete(&models.Invoice{}, inv.ID).Error; err != nil {
			return &PersistenceError{Op: "delete invoice", Err: err}
		}
		return nil
	})
	if err != nil {
		return nil, classify("delete invoice", err)
	}
	return &inv, nil
}

// Get loads one invoice with its items and resolved client/product display
// fields. Reads never mutate state.
func (s *InvoiceService) Get(ctx context.Context, userID, invoiceID uint) (*models.Invoice, error) {
	var inv models.Invoice
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", invoiceID, userID).
		Preload("Client").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("invoice_items.id") }).
		Preload("Items.Product").
		First(&inv).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, &PersistenceError{Op: "load invoice", Err: err}
	}
	resolveDisplayFields(&inv)
	return &inv, nil
}

// List returns the user's invoices, newest first, with client names resolved.
func (s *InvoiceService) List(ctx context.Context, userID uint) ([]models.Invoice, error) {
	var invoices []models.Invoice
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Preload("Client").
		Order("id DESC").
		Find(&invoices).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list invoices", Err: err}
	}
	for i := range invoices {
		resolveDisplayFields(&invoices[i])
	}
	return invoices, nil
}

// verifyReferences checks that the client and every referenced product
// belong to userID. Cross-tenant references are rejected before any row is
// written.
func verifyReferences(tx *gorm.DB, userID uint, in InvoiceInput) error {
	var n int64
	if err := tx.Model(&models.Client{}).
		Where("id = ? AND user_id = ?", in.ClientID, userID).
		Count(&n).Error; err != nil {
		return &PersistenceError{Op: "verify client", Err: err}
	}
	if n == 0 {
		return ErrForbidden
	}

	seen := map[uint]struct{}{}
	ids := make([]uint, 0, len(in.Items))
	for _, it := range in.Items {
		if it.ProductID == nil {
			continue
		}
		if _, dup := seen[*it.ProductID]; dup {
			continue
		}
		seen[*it.ProductID] = struct{}{}
		ids = append(ids, *it.ProductID)
	}
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Model(&models.Product{}).
		Where("id IN ? AND user_id = ?", ids, userID).
		Count(&n).Error; err != nil {
		return &PersistenceError{Op: "verify products", Err: err}
	}
	if n != int64(len(ids)) {
		return ErrForbidden
	}
	return nil
}

func buildItems(inputs []ItemInput) []models.InvoiceItem {
	items := make([]models.InvoiceItem, 0, len(inputs))
	for _, in := range inputs {
		dt := in.DiscountType
		if dt == "" {
			dt = models.DiscountNone
		}
		items = append(items, models.InvoiceItem{
			ProductID:     in.ProductID,
			Description:   in.Description,
			Quantity:      in.Quantity,
			Price:         in.Price,
			DiscountType:  dt,
			DiscountValue: in.DiscountValue,
		})
	}
	return items
}

func applyTotals(inv *models.Invoice, t pricing.Totals) {
	inv.Subtotal = t.Subtotal
	inv.VATAmount = t.VATAmount
	inv.Total = t.Total
}

func shippingOrZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func statusOrUnpaid(s models.InvoiceStatus) models.InvoiceStatus {
	if s == "" {
		return models.InvoiceStatusUnpaid
	}
	return s
}

func resolveDisplayFields(inv *models.Invoice) {
	if inv.Client != nil {
		inv.ClientName = inv.Client.CompanyName
	}
	for i := range inv.Items {
		if inv.Items[i].Product != nil {
			inv.Items[i].ProductName = inv.Items[i].Product.Name
		}
	}
}
