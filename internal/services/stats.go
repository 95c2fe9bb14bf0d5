package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/diewo77/go-billing/internal/models"
)

// DashboardSummary holds the headline numbers shown on the dashboard.
type DashboardSummary struct {
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
	UnpaidRevenue decimal.Decimal `json:"unpaid_revenue"`
	InvoiceCount  int64           `json:"invoice_count"`
	ClientCount   int64           `json:"client_count"`
	ProductCount  int64           `json:"product_count"`
	ActiveClients int64           `json:"active_clients"`
}

// Summary aggregates the user's invoices into dashboard figures. Sums are
// done over exact decimals rather than in SQL so the result matches the
// stored 2-decimal totals to the cent.
func (s *InvoiceService) Summary(ctx context.Context, userID uint) (DashboardSummary, error) {
	var out DashboardSummary
	db := s.db.WithContext(ctx)

	var invoices []models.Invoice
	if err := db.Where("user_id = ?", userID).Find(&invoices).Error; err != nil {
		return out, &PersistenceError{Op: "list invoices", Err: err}
	}

	active := map[uint]struct{}{}
	for _, inv := range invoices {
		out.TotalRevenue = out.TotalRevenue.Add(inv.Total)
		if inv.Outstanding() {
			out.UnpaidRevenue = out.UnpaidRevenue.Add(inv.Total)
		}
		active[inv.ClientID] = struct{}{}
	}
	out.InvoiceCount = int64(len(invoices))
	out.ActiveClients = int64(len(active))

	if err := db.Model(&models.Client{}).Where("user_id = ?", userID).Count(&out.ClientCount).Error; err != nil {
		return out, &PersistenceError{Op: "count clients", Err: err}
	}
	if err := db.Model(&models.Product{}).Where("user_id = ?", userID).Count(&out.ProductCount).Error; err != nil {
		return out, &PersistenceError{Op: "count products", Err: err}
	}
	return out, nil
}
