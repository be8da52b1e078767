package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"strings"
)

// ErrUnsupportedContactsValue is returned when a database value can not be scanned into ContactTypeDTOs.
var ErrUnsupportedContactsValue = errors.New("unsupported value for contact type list")

// ContactTypeDTO is one embedded contact type entry of a Contact.
type ContactTypeDTO struct {
	Name     string `json:"name"`
	IconPath string `json:"iconPath"`
}

// ContactTypeDTOs is the JSON encoded list stored in Contact.Contacts.
type ContactTypeDTOs []ContactTypeDTO

// Value implements driver.Valuer. A nil list is stored as an empty JSON array.
func (d ContactTypeDTOs) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}

	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode([]ContactTypeDTO(d)); err != nil {
		return nil, err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// Scan implements sql.Scanner.
func (d *ContactTypeDTOs) Scan(value interface{}) error {
	var raw []byte

	switch v := value.(type) {
	case nil:
		*d = ContactTypeDTOs{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return ErrUnsupportedContactsValue
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		*d = ContactTypeDTOs{}
		return nil
	}

	var out []ContactTypeDTO
	if err := json.Unmarshal(raw, &out); err != nil {
		return err
	}

	if out == nil {
		out = []ContactTypeDTO{}
	}

	*d = out

	return nil
}

// HasName reports whether any entry is named name, compared case-insensitively.
func (d ContactTypeDTOs) HasName(name string) bool {
	for _, dto := range d {
		if strings.EqualFold(dto.Name, name) {
			return true
		}
	}

	return false
}

// Rename rewrites every entry named previous (case-insensitive) to name and iconPath.
// It returns the number of rewritten entries. Entries for other names are untouched.
func (d ContactTypeDTOs) Rename(previous, name, iconPath string) int {
	var n int

	for i := range d {
		if strings.EqualFold(d[i].Name, previous) {
			d[i].Name = name
			d[i].IconPath = iconPath
			n++
		}
	}

	return n
}
