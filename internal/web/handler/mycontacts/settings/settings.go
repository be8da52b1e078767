// Package settings provides the "My Contacts" settings page and the contact type and
// contact group endpoints used by it.
package settings

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/pim-suite/mycontacts/internal/config"
	"github.com/pim-suite/mycontacts/internal/db/controller/record"
	"github.com/pim-suite/mycontacts/internal/db/models"
	"github.com/pim-suite/mycontacts/internal/i18n"
	"github.com/pim-suite/mycontacts/internal/web/handler"
	"github.com/pim-suite/mycontacts/internal/web/navigation"
)

const (
	// Path is the path to the settings page.
	Path = handler.RootPath + "my-contacts-settings"

	// TypesPath is the route group of the contact type endpoints.
	TypesPath = handler.RootPath + "my-contacts-types"

	// GroupsPath is the route group of the contact group endpoints.
	GroupsPath = handler.RootPath + "my-contacts-groups"

	// RemovePath and UpdatePath are registered below TypesPath and GroupsPath.
	RemovePath = handler.RootPath + "remove"
	UpdatePath = handler.RootPath + "update"

	// TemplateName is the name of the settings template.
	TemplateName = "my-contacts/settings"

	// TypesTableTemplate renders the table of active contact types.
	TypesTableTemplate = "my-contacts/components/settings/types-table"

	// GroupsTableTemplate renders the table of active contact groups.
	GroupsTableTemplate = "my-contacts/components/settings/groups-table"
)

// Service is the my contacts settings handler service.
type Service struct {
	cfg        *config.Config
	db         *gorm.DB
	translator *i18n.Translator
	validator  *validator.Validate
}

var _ handler.Service = (*Service)(nil)

// Handler is the my contacts settings handler.
var Handler = Service{}

// Init initializes the settings handler and registers its routes.
func (s *Service) Init(app *fiber.App, cfg *config.Config, db *gorm.DB) error {
	if app == nil || cfg == nil || db == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	translator, err := i18n.New(cfg.I18n.Locale)
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	v, err := translator.NewValidator()
	if err != nil {
		return err
	}

	s.cfg = cfg
	s.db = db
	s.translator = translator
	s.validator = v

	// the page handles its forms on the same url, GET included
	app.Get(Path, s.Page)
	app.Post(Path, s.Page)

	app.Route(TypesPath, func(router fiber.Router) {
		router.Post(RemovePath, s.RemoveType)
		router.Post(UpdatePath, s.UpdateType)
	})

	app.Route(GroupsPath, func(router fiber.Router) {
		router.Post(RemovePath, s.RemoveGroup)
		router.Post(UpdatePath, s.UpdateGroup)
	})

	return nil
}

// Page handles the settings page. Submitted contact type and contact group forms are
// processed first; the first one that fails answers the request.
func (s *Service) Page(c *fiber.Ctx) error {
	typeResult := s.submitTypeForm(c)
	if typeResult.failed() {
		return typeResult.send(c)
	}

	groupResult := s.submitGroupForm(c)
	if groupResult.failed() {
		return groupResult.send(c)
	}

	success := typeResult.message
	if success == "" {
		success = groupResult.message
	}

	return s.renderSettings(c, c.XHR(), success)
}

// renderSettings renders the settings page with both tables. With ajax set the page is
// rendered without layout so the client can swap it in place.
func (s *Service) renderSettings(c *fiber.Ctx, ajax bool, success string) error {
	types, err := record.FindActive[models.ContactType](s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load contact types")
		return c.Status(fiber.StatusInternalServerError).SendString(s.translator.T(i18n.KeyInternalError))
	}

	groups, err := record.FindActive[models.ContactGroup](s.db)
	if err != nil {
		log.Error().Err(err).Msg("failed to load contact groups")
		return c.Status(fiber.StatusInternalServerError).SendString(s.translator.T(i18n.KeyInternalError))
	}

	typesTable, err := handler.RenderFragment(c, TypesTableTemplate, fiber.Map{"Types": types})
	if err != nil {
		log.Error().Err(err).Str("template", TypesTableTemplate).Msg("failed to render template")
		return c.Status(fiber.StatusInternalServerError).SendString(s.translator.T(i18n.KeyInternalError))
	}

	groupsTable, err := handler.RenderFragment(c, GroupsTableTemplate, fiber.Map{"Groups": groups})
	if err != nil {
		log.Error().Err(err).Str("template", GroupsTableTemplate).Msg("failed to render template")
		return c.Status(fiber.StatusInternalServerError).SendString(s.translator.T(i18n.KeyInternalError))
	}

	nav := navigation.NewContext("My Contacts Settings", "my-contacts", "settings").
		AddBreadcrumb("My Contacts", "#", false).
		AddBreadcrumb("Settings", Path, true)

	data := fiber.Map{
		"Title":       s.cfg.Title,
		"Navigation":  nav,
		"TypesTable":  typesTable,
		"GroupsTable": groupsTable,
		"AjaxRender":  ajax,
		"Success":     success,
	}

	if ajax {
		return c.Render(TemplateName, data)
	}

	return c.Render(TemplateName, data, handler.BaseLayout)
}
