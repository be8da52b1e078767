package models

import "time"

// ContactType is a named category (e.g. "Work", "Home") assignable to contacts, with an icon image.
// Contacts reference a type by its name inside their embedded type list, not by ID.
type ContactType struct {
	// ID is the unique identifier for the contact type.
	ID uint `gorm:"primaryKey"`
	// Name is the display name. It is unique among non-deleted types (enforced in code).
	Name string `gorm:"size:255;not null;index"`
	// ImagePath is the directory of the type icon, always stored with a trailing slash.
	ImagePath string `gorm:"size:255;not null"`
	// Deleted is the soft delete flag. Deleted types are never physically removed.
	Deleted bool `gorm:"not null;default:false;index"`
	// CreatedAt is the timestamp when the type was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the type was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the ContactType model.
func (ContactType) TableName() string {
	return "my_contact_type"
}

// RecordName returns the name used for uniqueness checks.
func (t ContactType) RecordName() string {
	return t.Name
}
