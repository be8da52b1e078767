// Package contactgroup implements creation, removal and updates of contact groups.
package contactgroup

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/pim-suite/mycontacts/internal/db/controller/record"
	"github.com/pim-suite/mycontacts/internal/db/models"
)

// ColumnName is the name column of the contact group table.
const ColumnName = "name"

var (
	// ErrNameExists is returned when a non deleted contact group with the same name already exists.
	ErrNameExists = errors.New("contact group with this name already exists")

	// UpdatableFields maps accepted update parameters to their columns.
	UpdatableFields = map[string]string{
		"name": ColumnName,
	}
)

// Create persists a new contact group.
func Create(db *gorm.DB, g *models.ContactGroup) error {
	if db == nil {
		return record.ErrDBNil
	}

	exists, err := record.NameExists[models.ContactGroup](db, g.Name)
	if err != nil {
		return fmt.Errorf("failed to check contact group name: %w", err)
	}

	if exists {
		return ErrNameExists
	}

	return db.Create(g).Error
}

// Remove soft deletes the contact group with the given ID.
// Contacts assigned to the group keep their reference.
func Remove(db *gorm.DB, id uint) error {
	return record.DeleteByID[models.ContactGroup](db, id)
}

// Update applies the submitted parameters to the contact group with the given ID.
func Update(db *gorm.DB, id uint, params map[string]string) (*models.ContactGroup, error) {
	g, err := record.Find[models.ContactGroup](db, id)
	if err != nil {
		return nil, err
	}

	if err = record.Update(db, g, record.FilterFields(params, UpdatableFields)); err != nil {
		return nil, fmt.Errorf("failed to update contact group: %w", err)
	}

	return g, nil
}
