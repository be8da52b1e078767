// Package contact provides the persistence operations for contacts and their embedded contact type list.
package contact

import (
	"gorm.io/gorm"

	"github.com/pim-suite/mycontacts/internal/db/controller/record"
	"github.com/pim-suite/mycontacts/internal/db/models"
)

// BatchSize is the number of contacts loaded per query while scanning embedded type lists.
const BatchSize = 100

// FindWithTypeName returns every non deleted contact whose embedded type list has an entry
// named typeName, compared case-insensitively.
//
// The embedded list is JSON text, so the match is done on the decoded entries instead of in SQL,
// which keeps the lookup identical on MySQL, PostgreSQL and SQLite.
func FindWithTypeName(db *gorm.DB, typeName string) ([]models.Contact, error) {
	if db == nil {
		return nil, record.ErrDBNil
	}

	var (
		out   []models.Contact
		batch []models.Contact
	)

	result := db.Where("deleted = ?", false).FindInBatches(&batch, BatchSize, func(_ *gorm.DB, _ int) error {
		for i := range batch {
			if batch[i].Contacts.HasName(typeName) {
				out = append(out, batch[i])
			}
		}

		return nil
	})
	if result.Error != nil {
		return nil, result.Error
	}

	return out, nil
}

// Create inserts a new contact.
func Create(db *gorm.DB, c *models.Contact) error {
	if db == nil {
		return record.ErrDBNil
	}

	if c.Contacts == nil {
		c.Contacts = models.ContactTypeDTOs{}
	}

	return db.Create(c).Error
}

// Save persists all fields of an existing contact.
func Save(db *gorm.DB, c *models.Contact) error {
	if db == nil {
		return record.ErrDBNil
	}

	return db.Save(c).Error
}
