package models

import "time"

// Client represents a customer company that invoices are issued to.
// Implements the Ownable interface for ownership-based scoping.
type Client struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// UserID is the owner of this client (multi-tenant isolation)
	UserID uint `gorm:"index;not null" json:"user_id"`
	User   User `gorm:"foreignKey:UserID" json:"-"`

	CompanyName string `gorm:"size:255;not null" json:"company_name"`
	CompanyCode string `gorm:"size:50" json:"company_code,omitempty"`
	VATCode     string `gorm:"size:50" json:"vat_code,omitempty"`

	Address    string `gorm:"size:500" json:"address,omitempty"`
	City       string `gorm:"size:100" json:"city,omitempty"`
	PostalCode string `gorm:"size:20" json:"postal_code,omitempty"`
	Country    string `gorm:"size:100;default:'Lietuva'" json:"country,omitempty"`

	Email string `gorm:"size:255" json:"email,omitempty"`
	Phone string `gorm:"size:50" json:"phone,omitempty"`

	Invoices []Invoice `gorm:"foreignKey:ClientID" json:"invoices,omitempty"`
}

// GetUserID implements the Ownable interface.
func (c *Client) GetUserID() uint {
	return c.UserID
}

// FullAddress returns the formatted postal address.
func (c *Client) FullAddress() string {
	addr := c.Address
	if c.PostalCode != "" || c.City != "" {
		if addr != "" {
			addr += "\n"
		}
		addr += c.PostalCode
		if c.PostalCode != "" && c.City != "" {
			addr += " "
		}
		addr += c.City
	}
	if c.Country != "" {
		if addr != "" {
			addr += "\n"
		}
		addr += c.Country
	}
	return addr
}
