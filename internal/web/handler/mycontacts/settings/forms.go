package settings

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/pim-suite/mycontacts/internal/db/controller/contactgroup"
	"github.com/pim-suite/mycontacts/internal/db/controller/contacttype"
	"github.com/pim-suite/mycontacts/internal/db/models"
	"github.com/pim-suite/mycontacts/internal/i18n"
	"github.com/pim-suite/mycontacts/internal/web/handler"
)

// Form field names.
const (
	TypeNameField      = "contact_type[name]"
	TypeImagePathField = "contact_type[image_path]"
	GroupNameField     = "contact_group[name]"
	IDField            = "id"
)

var errInvalidID = errors.New("invalid id")

// typeFormInput is the contact type creation form.
type typeFormInput struct {
	Name      string `form:"contact_type[name]" validate:"required,max=255"`
	ImagePath string `form:"contact_type[image_path]" validate:"required,max=255"`
}

// groupFormInput is the contact group creation form.
type groupFormInput struct {
	Name string `form:"contact_group[name]" validate:"required,max=255"`
}

// updateInput validates the optional fields of the update endpoints.
type updateInput struct {
	Name      *string `form:"name" validate:"omitnil,min=1,max=255"`
	ImagePath *string `form:"image_path" validate:"omitnil,min=1,max=255"`
}

// formResult is the outcome of a form handler.
type formResult struct {
	status  int
	message string
	errors  map[string]string
}

func (r formResult) failed() bool {
	return r.status != fiber.StatusOK
}

func (r formResult) send(c *fiber.Ctx) error {
	body := fiber.Map{handler.MessageKey: r.message}
	if len(r.errors) > 0 {
		body[handler.ErrorsKey] = r.errors
	}

	return c.Status(r.status).JSON(body)
}

func (s *Service) invalid(err error) formResult {
	return formResult{
		status:  fiber.StatusBadRequest,
		message: s.translator.T(i18n.KeyFormInvalid),
		errors:  s.translator.ValidationErrors(err),
	}
}

// submitTypeForm creates a contact type when its form was submitted.
func (s *Service) submitTypeForm(c *fiber.Ctx) formResult {
	if !isSubmitted(c, TypeNameField) {
		return formResult{status: fiber.StatusOK}
	}

	in := typeFormInput{
		Name:      strings.TrimSpace(c.FormValue(TypeNameField)),
		ImagePath: strings.TrimSpace(c.FormValue(TypeImagePathField)),
	}

	if err := s.validator.Struct(in); err != nil {
		log.Debug().Err(err).Msg("contact type form is invalid")
		return s.invalid(err)
	}

	t := &models.ContactType{Name: in.Name, ImagePath: in.ImagePath}

	err := contacttype.Create(s.db, t)
	switch {
	case errors.Is(err, contacttype.ErrNameExists):
		return formResult{status: fiber.StatusConflict, message: s.translator.T(i18n.KeyRecordWithThisNameExist)}
	case err != nil:
		log.Error().Err(err).Str("name", in.Name).Msg("failed to create contact type")
		return formResult{status: fiber.StatusInternalServerError, message: s.translator.T(i18n.KeyInternalError)}
	}

	log.Info().Uint("id", t.ID).Str("name", t.Name).Msg("contact type created")

	return formResult{status: fiber.StatusOK, message: s.translator.T(i18n.KeyFormSuccess)}
}

// submitGroupForm creates a contact group when its form was submitted.
func (s *Service) submitGroupForm(c *fiber.Ctx) formResult {
	if !isSubmitted(c, GroupNameField) {
		return formResult{status: fiber.StatusOK}
	}

	in := groupFormInput{Name: strings.TrimSpace(c.FormValue(GroupNameField))}

	if err := s.validator.Struct(in); err != nil {
		log.Debug().Err(err).Msg("contact group form is invalid")
		return s.invalid(err)
	}

	g := &models.ContactGroup{Name: in.Name}

	err := contactgroup.Create(s.db, g)
	switch {
	case errors.Is(err, contactgroup.ErrNameExists):
		return formResult{status: fiber.StatusConflict, message: s.translator.T(i18n.KeyRecordWithThisNameExist)}
	case err != nil:
		log.Error().Err(err).Str("name", in.Name).Msg("failed to create contact group")
		return formResult{status: fiber.StatusInternalServerError, message: s.translator.T(i18n.KeyInternalError)}
	}

	log.Info().Uint("id", g.ID).Str("name", g.Name).Msg("contact group created")

	return formResult{status: fiber.StatusOK, message: s.translator.T(i18n.KeyFormSuccess)}
}

// validateUpdate checks the name and image path parameters if they were sent.
func (s *Service) validateUpdate(params map[string]string) error {
	var in updateInput

	if name, ok := params["name"]; ok {
		name = strings.TrimSpace(name)
		in.Name = &name
	}

	if p, ok := params["image_path"]; ok {
		p = strings.TrimSpace(p)
		in.ImagePath = &p
	}

	return s.validator.Struct(in) //nolint:wrapcheck
}

// isSubmitted reports whether the request is a POST carrying field.
func isSubmitted(c *fiber.Ctx, field string) bool {
	if c.Method() != fiber.MethodPost {
		return false
	}

	if c.Request().PostArgs().Has(field) {
		return true
	}

	form, err := c.MultipartForm()
	if err != nil {
		return false
	}

	_, ok := form.Value[field]

	return ok
}

// formParams returns all submitted form values, the first one per key.
func formParams(c *fiber.Ctx) map[string]string {
	params := map[string]string{}

	c.Request().PostArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})

	if form, err := c.MultipartForm(); err == nil {
		for key, values := range form.Value {
			if len(values) > 0 {
				params[key] = values[0]
			}
		}
	}

	return params
}

// parseID reads the record id from the form.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(strings.TrimSpace(c.FormValue(IDField)), 10, 0)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}

	return uint(id), nil
}
