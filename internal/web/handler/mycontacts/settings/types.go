package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/pim-suite/mycontacts/internal/db/controller/contacttype"
	"github.com/pim-suite/mycontacts/internal/db/controller/record"
	"github.com/pim-suite/mycontacts/internal/i18n"
	"github.com/pim-suite/mycontacts/internal/web/handler"
)

// RemoveType soft deletes a contact type unless an active contact still uses it,
// then renders the settings fragment.
func (s *Service) RemoveType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(s.translator.T(i18n.KeyInvalidID))
	}

	err = contacttype.Remove(s.db, id)
	switch {
	case errors.Is(err, record.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).SendString(s.translator.T(i18n.KeyRecordNotFound))
	case errors.Is(err, contacttype.ErrTypeInUse):
		log.Warn().Uint("id", id).Msg("contact type is used by contacts and was not removed")
		return handler.JSONMessage(c, fiber.StatusInternalServerError, s.translator.T(i18n.KeyForeignKeyViolation))
	case err != nil:
		log.Error().Err(err).Uint("id", id).Msg("failed to remove contact type")
		return c.Status(fiber.StatusInternalServerError).SendString(s.translator.T(i18n.KeyInternalError))
	}

	log.Info().Uint("id", id).Msg("contact type removed")

	return s.renderSettings(c, true, "")
}

// UpdateType updates a contact type and rewrites the contacts that reference it.
func (s *Service) UpdateType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(s.translator.T(i18n.KeyInvalidID))
	}

	// validate exactly what will be stored
	params := contacttype.NormalizeParams(formParams(c))
	if err = s.validateUpdate(params); err != nil {
		return s.invalid(err).send(c)
	}

	t, err := contacttype.Update(s.db, id, params)
	switch {
	case errors.Is(err, contacttype.ErrEmptyField):
		return s.invalid(err).send(c)
	case errors.Is(err, record.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).SendString(s.translator.T(i18n.KeyRecordNotFound))
	case errors.Is(err, contacttype.ErrPropagation):
		return c.Status(fiber.StatusInternalServerError).SendString(s.translator.T(i18n.KeyPropagationFailed))
	case err != nil:
		log.Error().Err(err).Uint("id", id).Msg("failed to update contact type")
		return c.Status(fiber.StatusInternalServerError).SendString(s.translator.T(i18n.KeyInternalError))
	}

	log.Info().Uint("id", t.ID).Str("name", t.Name).Msg("contact type updated")

	return handler.JSONMessage(c, fiber.StatusOK, s.translator.T(i18n.KeyRecordUpdated))
}
