package models

import "time"

// Contact is a person or organization in the "My Contacts" module.
// Its contact types are stored denormalized in Contacts, so renaming a ContactType
// requires rewriting the embedded entries of every affected contact.
type Contact struct {
	// ID is the unique identifier for the contact.
	ID uint `gorm:"primaryKey"`
	// Name is the display name of the contact.
	Name string `gorm:"size:255;not null"`
	// Description is a free text note.
	Description string `gorm:"size:1024"`
	// GroupID optionally assigns the contact to a group.
	GroupID *uint `gorm:"index"`
	// Group is the associated group (loaded via foreign key).
	Group *ContactGroup `gorm:"foreignKey:GroupID;constraint:OnDelete:SET NULL"`
	// Contacts holds the embedded contact type entries as a JSON array.
	Contacts ContactTypeDTOs `gorm:"type:text;not null"`
	// Deleted is the soft delete flag.
	Deleted bool `gorm:"not null;default:false;index"`
	// CreatedAt is the timestamp when the contact was created (managed by GORM).
	CreatedAt time.Time
	// UpdatedAt is the timestamp when the contact was last updated (managed by GORM).
	UpdatedAt time.Time
}

// TableName specifies the database table name for the Contact model.
func (Contact) TableName() string {
	return "my_contact"
}
