// Package models defines the persisted entities. Every tenant-owned record
// carries a UserID and queries are scoped to it.
package models

// Ownable is implemented by records that belong to a single user. Lookups
// filter on the owner so one tenant can never observe another's rows.
type Ownable interface {
	GetUserID() uint
}

var (
	_ Ownable = (*Client)(nil)
	_ Ownable = (*Product)(nil)
	_ Ownable = (*Invoice)(nil)
)
