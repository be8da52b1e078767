package models

import "time"

// ContactGroup is a named grouping of contacts, independent of the contact type.
type ContactGroup struct {
	// ID is the unique identifier for the contact group.
	ID uint `gorm:"primaryKey"`
	// Name is the display name. It is unique among non-deleted groups (enforced in code).
	Name string `gorm:"size:255;not null;index"`
	// Deleted is the soft delete flag.
	Deleted bool `gorm:"not null;default:false;index"`
	// CreatedAt is the timestamp when the group was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the group was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the ContactGroup model.
func (ContactGroup) TableName() string {
	return "my_contact_group"
}

// RecordName returns the name used for uniqueness checks.
func (g ContactGroup) RecordName() string {
	return g.Name
}
