package handlers

import (
	"log"
	"strings"

	"studio-site-backend/internal/models"
	"studio-site-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

// for simple crud operations service layer is not required
type ContactHandler struct {
	repo repo.ContactRepoInterface
}

func NewContactHandler(repo repo.ContactRepoInterface) *ContactHandler {
	return &ContactHandler{repo: repo}
}

// Submit handles POST /api/contact. The method guard runs before any body
// parsing.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"ok":    false,
			"error": "Method not allowed",
		})
	}

	var dto struct {
		Name    string `json:"name"`
		Email   string `json:"email"`
		Message string `json:"message"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "Invalid request body",
		})
	}

	if strings.TrimSpace(dto.Name) == "" ||
		strings.TrimSpace(dto.Email) == "" ||
		strings.TrimSpace(dto.Message) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"ok":    false,
			"error": "name, email and message are required",
		})
	}

	if err := h.repo.EnsureSchema(); err != nil {
		log.Println(err, "Error ensuring contact schema")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to save submission",
		})
	}

	if err := h.repo.CreateSubmission(&models.ContactSubmission{
		Name:    dto.Name,
		Email:   dto.Email,
		Message: dto.Message,
	}); err != nil {
		log.Println(err, "Error saving contact submission")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"ok":    false,
			"error": "Failed to save submission",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"ok": true,
	})
}
