package settings

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/pim-suite/mycontacts/internal/db/controller/contactgroup"
	"github.com/pim-suite/mycontacts/internal/db/controller/record"
	"github.com/pim-suite/mycontacts/internal/i18n"
	"github.com/pim-suite/mycontacts/internal/web/handler"
)

// RemoveGroup soft deletes a contact group and renders the settings fragment.
func (s *Service) RemoveGroup(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(s.translator.T(i18n.KeyInvalidID))
	}

	err = contactgroup.Remove(s.db, id)
	switch {
	case errors.Is(err, record.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).SendString(s.translator.T(i18n.KeyRecordNotFound))
	case err != nil:
		log.Error().Err(err).Uint("id", id).Msg("failed to remove contact group")
		return c.Status(fiber.StatusInternalServerError).SendString(s.translator.T(i18n.KeyInternalError))
	}

	log.Info().Uint("id", id).Msg("contact group removed")

	return s.renderSettings(c, true, "")
}

// UpdateGroup applies the submitted fields to a contact group.
func (s *Service) UpdateGroup(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(s.translator.T(i18n.KeyInvalidID))
	}

	params := formParams(c)
	if err = s.validateUpdate(params); err != nil {
		return s.invalid(err).send(c)
	}

	g, err := contactgroup.Update(s.db, id, params)
	switch {
	case errors.Is(err, record.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).SendString(s.translator.T(i18n.KeyRecordNotFound))
	case err != nil:
		log.Error().Err(err).Uint("id", id).Msg("failed to update contact group")
		return c.Status(fiber.StatusInternalServerError).SendString(s.translator.T(i18n.KeyInternalError))
	}

	log.Info().Uint("id", g.ID).Str("name", g.Name).Msg("contact group updated")

	return handler.JSONMessage(c, fiber.StatusOK, s.translator.T(i18n.KeyRecordUpdated))
}
