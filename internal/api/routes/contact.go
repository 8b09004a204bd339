package routes

import (
	"studio-site-backend/internal/config"
	"studio-site-backend/internal/handlers"
	"studio-site-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerContact(r fiber.Router) {
	contactRepo := repo.NewContactRepository(config.DB)
	contactHandler := handlers.NewContactHandler(contactRepo)

	// All methods route to the handler so its 405 guard owns the response.
	r.All("/contact", contactHandler.Submit)
}
