// Package contacttype implements creation, guarded removal and rename aware updates of contact types.
package contacttype

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pim-suite/mycontacts/internal/db/controller/contact"
	"github.com/pim-suite/mycontacts/internal/db/controller/record"
	"github.com/pim-suite/mycontacts/internal/db/models"
	"github.com/pim-suite/mycontacts/internal/pathutil"
)

const (
	// ColumnName is the name column of the contact type table.
	ColumnName = "name"
	// ColumnImagePath is the image path column of the contact type table.
	ColumnImagePath = "image_path"

	// ParamName and ParamImagePath are the update parameters.
	ParamName      = "name"
	ParamImagePath = "image_path"
	// ParamImagePathAlias is accepted for ParamImagePath. ParamImagePath wins if both are sent.
	ParamImagePathAlias = "imagePath"
)

var (
	// ErrNameExists is returned when a non deleted contact type with the same name already exists.
	ErrNameExists = errors.New("contact type with this name already exists")
	// ErrTypeInUse is returned when an active contact still references the contact type.
	ErrTypeInUse = errors.New("contact type is used by active contacts")
	// ErrPropagation is returned when the contacts of a renamed type could not be rewritten.
	ErrPropagation = errors.New("could not update the contacts for updated contact type")
	// ErrEmptyField is returned when an update sets the name or image path to an empty value.
	ErrEmptyField = errors.New("contact type field must not be empty")

	// UpdatableFields maps accepted update parameters to their columns.
	UpdatableFields = map[string]string{
		ParamName:      ColumnName,
		ParamImagePath: ColumnImagePath,
	}
)

// NormalizeParams trims all values and folds ParamImagePathAlias into ParamImagePath.
// The result is what Update persists, so callers validate it instead of the raw parameters.
func NormalizeParams(params map[string]string) map[string]string {
	out := make(map[string]string, len(params))

	for key, value := range params {
		if key == ParamImagePathAlias {
			continue
		}

		out[key] = strings.TrimSpace(value)
	}

	if alias, ok := params[ParamImagePathAlias]; ok {
		if _, set := out[ParamImagePath]; !set {
			out[ParamImagePath] = strings.TrimSpace(alias)
		}
	}

	return out
}

// Create persists a new contact type. The image path is normalized to end with a trailing slash.
func Create(db *gorm.DB, t *models.ContactType) error {
	if db == nil {
		return record.ErrDBNil
	}

	exists, err := record.NameExists[models.ContactType](db, t.Name)
	if err != nil {
		return fmt.Errorf("failed to check contact type name: %w", err)
	}

	if exists {
		return ErrNameExists
	}

	t.ImagePath = pathutil.AddTrailingSlash(t.ImagePath)

	return db.Create(t).Error
}

// IsReferenced reports whether any non deleted contact embeds a type named name (case-insensitive).
func IsReferenced(db *gorm.DB, name string) (bool, error) {
	contacts, err := contact.FindWithTypeName(db, name)
	if err != nil {
		return false, err
	}

	return len(contacts) > 0, nil
}

// Remove soft deletes the contact type with the given ID unless an active contact still uses it.
// The embedded lists of contacts are left as they are.
func Remove(db *gorm.DB, id uint) error {
	t, err := record.Find[models.ContactType](db, id)
	if err != nil {
		return err
	}

	inUse, err := IsReferenced(db, t.Name)
	if err != nil {
		return fmt.Errorf("failed to check contact type references: %w", err)
	}

	if inUse {
		return ErrTypeInUse
	}

	return record.DeleteByID[models.ContactType](db, id)
}

// Update applies the submitted parameters to the contact type with the given ID and rewrites the
// embedded entries of every contact that referenced the previous name.
//
// Both steps run in one transaction: if rewriting the contacts fails, the type update is rolled
// back as well and an error wrapping ErrPropagation is returned. A sent but empty name or image
// path returns ErrEmptyField and changes nothing.
func Update(db *gorm.DB, id uint, params map[string]string) (*models.ContactType, error) {
	params = NormalizeParams(params)

	for _, key := range []string{ParamName, ParamImagePath} {
		if value, ok := params[key]; ok && value == "" {
			return nil, fmt.Errorf("%w: %s", ErrEmptyField, key)
		}
	}

	t, err := record.Find[models.ContactType](db, id)
	if err != nil {
		return nil, err
	}

	before := *t

	fields := record.FilterFields(params, UpdatableFields)
	if p, ok := fields[ColumnImagePath].(string); ok {
		fields[ColumnImagePath] = pathutil.AddTrailingSlash(p)
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if errUpdate := record.Update(tx, t, fields); errUpdate != nil {
			return fmt.Errorf("failed to update contact type: %w", errUpdate)
		}

		if errPropagate := propagate(tx, before.Name, t.Name, t.ImagePath); errPropagate != nil {
			return errors.Join(ErrPropagation, errPropagate)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Uint("contact_type_id", id).Msg("contact type update rolled back")
		return nil, err
	}

	return t, nil
}
