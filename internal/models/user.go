package models

import "time"

// User represents an authenticated account in the system.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Email    string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	FullName string `gorm:"size:255" json:"full_name,omitempty"`
	Password string `gorm:"size:255;not null" json:"-"` // bcrypt hash, never exposed in JSON

	Role      string     `gorm:"size:50;default:'user'" json:"role"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}
