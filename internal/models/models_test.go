package models

import "testing"

func TestInvoiceStatus_Valid(t *testing.T) {
	tests := []struct {
		status InvoiceStatus
		want   bool
	}{
		{InvoiceStatusUnpaid, true},
		{InvoiceStatusPaid, true},
		{InvoiceStatusOverdue, true},
		{"", false},
		{"draft", false},
	}
	for _, tt := range tests {
		if got := tt.status.Valid(); got != tt.want {
			t.Errorf("InvoiceStatus(%q).Valid() = %v, want %v", tt.status, got, tt.want)
		}
	}
}

func TestDiscountType_Valid(t *testing.T) {
	tests := []struct {
		dt   DiscountType
		want bool
	}{
		{DiscountNone, true},
		{DiscountFixed, true},
		{DiscountPercent, true},
		{"", true}, // absent means none
		{"rebate", false},
	}
	for _, tt := range tests {
		if got := tt.dt.Valid(); got != tt.want {
			t.Errorf("DiscountType(%q).Valid() = %v, want %v", tt.dt, got, tt.want)
		}
	}
}

func TestInvoice_Outstanding(t *testing.T) {
	for _, tt := range []struct {
		status InvoiceStatus
		want   bool
	}{
		{InvoiceStatusUnpaid, true},
		{InvoiceStatusOverdue, true},
		{InvoiceStatusPaid, false},
	} {
		inv := &Invoice{Status: tt.status}
		if got := inv.Outstanding(); got != tt.want {
			t.Errorf("Outstanding() with %q = %v, want %v", tt.status, got, tt.want)
		}
		if inv.IsPaid() == tt.want {
			t.Errorf("IsPaid() with %q should be the inverse of Outstanding()", tt.status)
		}
	}
}

func TestOwnable(t *testing.T) {
	if got := (&Invoice{UserID: 7}).GetUserID(); got != 7 {
		t.Errorf("Invoice.GetUserID() = %d, want 7", got)
	}
	if got := (&Client{UserID: 8}).GetUserID(); got != 8 {
		t.Errorf("Client.GetUserID() = %d, want 8", got)
	}
	if got := (&Product{UserID: 9}).GetUserID(); got != 9 {
		t.Errorf("Product.GetUserID() = %d, want 9", got)
	}
}

func TestClient_FullAddress(t *testing.T) {
	tests := []struct {
		name   string
		client Client
		want   string
	}{
		{
			name: "full address",
			client: Client{
				Address:    "Gedimino pr. 1",
				PostalCode: "01103",
				City:       "Vilnius",
				Country:    "Lietuva",
			},
			want: "Gedimino pr. 1\n01103 Vilnius\nLietuva",
		},
		{
			name:   "only city",
			client: Client{City: "Kaunas"},
			want:   "Kaunas",
		},
		{
			name:   "empty",
			client: Client{},
			want:   "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.client.FullAddress(); got != tt.want {
				t.Errorf("FullAddress() = %q, want %q", got, tt.want)
			}
		})
	}
}
