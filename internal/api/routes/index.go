package routes

import (
	"github.com/gofiber/fiber/v2"
)

// Register wires every public endpoint. Paths are fixed by the widget and
// the contact form on the site, so there is no version segment.
func Register(app *fiber.App) {
	api := app.Group("/api")

	registerHealth(api)
	registerContact(api)
	registerCopilot(api)
}
