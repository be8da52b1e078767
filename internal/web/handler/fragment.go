package handler

import (
	"bytes"
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"
)

// ErrNoViews is returned when the fiber app has no template engine configured.
var ErrNoViews = errors.New("fiber app has no views engine")

// RenderFragment renders the template name without layout and returns it as HTML,
// ready to be embedded into another template.
func RenderFragment(c *fiber.Ctx, name string, bind interface{}) (template.HTML, error) {
	views := c.App().Config().Views
	if views == nil {
		return "", ErrNoViews
	}

	var buf bytes.Buffer
	if err := views.Render(&buf, name, bind); err != nil {
		return "", err //nolint:wrapcheck
	}

	return template.HTML(buf.String()), nil //nolint:gosec // rendered by html/template
}

// JSONMessage sends {"message": msg} with the given status.
func JSONMessage(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(fiber.Map{MessageKey: msg})
}
