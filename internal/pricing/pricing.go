// Package pricing computes invoice amounts. All arithmetic uses exact
// decimals so that totals never accumulate binary floating point drift,
// no matter how many lines an invoice carries.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/diewo77/go-billing/internal/models"
)

// VATRate is the flat VAT policy rate applied to every invoice subtotal.
var VATRate = decimal.New(21, -2) // 0.21

var hundred = decimal.NewFromInt(100)

// Totals holds the derived invoice amounts, rounded to cents.
type Totals struct {
	Subtotal  decimal.Decimal
	VATAmount decimal.Decimal
	Total     decimal.Decimal
}

// LineTotal returns the discounted amount for one item, rounded to cents.
// A fixed discount subtracts an absolute amount, a percent discount subtracts
// a share of quantity*price. Results never go below zero.
func LineTotal(item models.InvoiceItem) decimal.Decimal {
	amount := item.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
	switch item.DiscountType {
	case models.DiscountFixed:
		amount = amount.Sub(item.DiscountValue)
	case models.DiscountPercent:
		amount = amount.Sub(amount.Mul(item.DiscountValue).Div(hundred))
	}
	if amount.IsNegative() {
		amount = decimal.Zero
	}
	return amount.Round(2)
}

// Compute fills LineTotal on every item and derives the invoice totals:
//
//	subtotal = shipping + sum of line totals
//	vat      = subtotal * VATRate
//	total    = subtotal + vat
//
// The subtotal sums the rounded per-line amounts, so the stored lines always
// add up to the stored subtotal exactly. A negative shipping price counts
// as zero.
func Compute(shipping decimal.Decimal, items []models.InvoiceItem) Totals {
	if shipping.IsNegative() {
		shipping = decimal.Zero
	}
	subtotal := shipping
	for i := range items {
		items[i].LineTotal = LineTotal(items[i])
		subtotal = subtotal.Add(items[i].LineTotal)
	}
	subtotal = subtotal.Round(2)
	vat := subtotal.Mul(VATRate).Round(2)
	return Totals{
		Subtotal:  subtotal,
		VATAmount: vat,
		Total:     subtotal.Add(vat).Round(2),
	}
}
