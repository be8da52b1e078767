package database

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pim-suite/mycontacts/internal/db/controller/contacttype"
	"github.com/pim-suite/mycontacts/internal/db/models"
)

// DefaultContactTypes are created on a database without any contact type.
var DefaultContactTypes = []models.ContactType{
	{Name: "Email", ImagePath: "/static/icons/email/"},
	{Name: "Phone", ImagePath: "/static/icons/phone/"},
	{Name: "Website", ImagePath: "/static/icons/website/"},
}

// Seed creates the default contact types if the contact type table is empty.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.ContactType{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count contact types: %w", err)
	}

	if count > 0 {
		return nil
	}

	for _, t := range DefaultContactTypes {
		if err := contacttype.Create(db, &t); err != nil && !errors.Is(err, contacttype.ErrNameExists) {
			return fmt.Errorf("failed to seed contact type %s: %w", t.Name, err)
		}
	}

	log.Info().Int("contact_types", len(DefaultContactTypes)).Msg("seeded default contact types")

	return nil
}
