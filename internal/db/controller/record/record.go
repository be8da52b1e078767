// Package record provides generic, soft-delete aware CRUD helpers shared by the
// contact type, contact group and contact controllers.
package record

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

const (
	idQueryPattern      = "id = ?"
	nameQueryPattern    = "name = ?"
	deletedQueryPattern = "deleted = ?"
	deletedColumn       = "deleted"
)

var (
	// ErrRecordNotFound is returned when no record exists for the given id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrInvalidID is returned for a zero record id.
	ErrInvalidID = errors.New("invalid record id")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// Named is implemented by models that have a unique display name.
type Named interface {
	RecordName() string
}

// Find retrieves a record by its ID, including soft deleted ones.
func Find[T any](db *gorm.DB, id uint) (*T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	if id == 0 {
		return nil, ErrInvalidID
	}

	var out T

	result := db.First(&out, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}

		return nil, result.Error
	}

	return &out, nil
}

// FindActive retrieves all records that are not soft deleted, ordered by ID.
func FindActive[T any](db *gorm.DB) ([]T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var out []T

	result := db.Where(deletedQueryPattern, false).Order("id ASC").Find(&out)
	if result.Error != nil {
		return nil, result.Error
	}

	return out, nil
}

// FindActiveByName retrieves the non deleted records whose name equals name exactly.
// The comparison is case-sensitive regardless of the column collation of the engine.
func FindActiveByName[T Named](db *gorm.DB, name string) ([]T, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var candidates []T

	result := db.Where(nameQueryPattern, name).Where(deletedQueryPattern, false).Find(&candidates)
	if result.Error != nil {
		return nil, result.Error
	}

	out := make([]T, 0, len(candidates))

	for _, c := range candidates {
		if c.RecordName() == name {
			out = append(out, c)
		}
	}

	return out, nil
}

// NameExists reports whether a non deleted record named exactly name exists.
func NameExists[T Named](db *gorm.DB, name string) (bool, error) {
	found, err := FindActiveByName[T](db, name)
	if err != nil {
		return false, err
	}

	return len(found) > 0, nil
}

// DeleteByID soft deletes the record with the given ID by setting its deleted flag.
// Deleting an already deleted record succeeds.
func DeleteByID[T any](db *gorm.DB, id uint) error {
	if _, err := Find[T](db, id); err != nil {
		return err
	}

	return db.Model(new(T)).Where(idQueryPattern, id).Update(deletedColumn, true).Error
}

// Update applies the column/value map to entity, persists it and reloads entity from the database.
// An empty map is a no-op.
func Update[T any](db *gorm.DB, entity *T, fields map[string]interface{}) error {
	if db == nil {
		return ErrDBNil
	}

	if len(fields) == 0 {
		return nil
	}

	if err := db.Model(entity).Updates(fields).Error; err != nil {
		return err
	}

	return db.First(entity).Error
}

// FilterFields keeps only the submitted parameters listed in allowed and maps them to their column names.
// Values are trimmed. Keys not present in allowed (for example "id") are dropped.
func FilterFields(params map[string]string, allowed map[string]string) map[string]interface{} {
	out := make(map[string]interface{}, len(params))

	for key, value := range params {
		column, ok := allowed[key]
		if !ok {
			continue
		}

		out[column] = strings.TrimSpace(value)
	}

	return out
}
