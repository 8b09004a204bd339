package routes

import (
	"log"

	"studio-site-backend/internal/config"

	"github.com/gofiber/fiber/v2"
)

func registerHealth(r fiber.Router) {
	registerHealthWith(r, config.PingDB)
}

// registerHealthWith takes the ping function so the failure path can be
// exercised without a live pool.
func registerHealthWith(r fiber.Router, ping func() error) {
	r.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})

	// Database connectivity check
	r.Get("/health/db", func(c *fiber.Ctx) error {
		if err := ping(); err != nil {
			log.Println(err, "Database ping failed")
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unavailable",
			})
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "ok",
		})
	})
}
