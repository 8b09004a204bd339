package handlers

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"studio-site-backend/internal/copilot"
	"studio-site-backend/internal/copilot/prompts"
	llmHandlers "studio-site-backend/internal/llm_handlers"
	"studio-site-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

// CopilotHandler is the proxy endpoint: it forwards the widget's turn
// history to the configured provider and returns a single reply. Every
// failure path returns a safe fallback reply alongside the error indicator,
// so a client that only reads "reply" still degrades gracefully.
type CopilotHandler struct {
	client llmHandlers.Client
	logs   repo.CopilotLogRepoInterface
}

func NewCopilotHandler(client llmHandlers.Client, logs repo.CopilotLogRepoInterface) *CopilotHandler {
	return &CopilotHandler{client: client, logs: logs}
}

type copilotTurn struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// Exchange handles POST /api/copilot. The method guard runs before any
// body parsing or downstream call.
func (h *CopilotHandler) Exchange(c *fiber.Ctx) error {
	if c.Method() != fiber.MethodPost {
		c.Set(fiber.HeaderAllow, fiber.MethodPost)
		return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{
			"error": "Method not allowed",
		})
	}

	var dto struct {
		Messages []copilotTurn `json:"messages"`
	}
	if err := c.BodyParser(&dto); err != nil {
		return h.fail(c, nil, "Invalid request body", err)
	}
	if len(dto.Messages) == 0 {
		return h.fail(c, nil, "No messages provided", nil)
	}
	if h.client == nil {
		return h.fail(c, dto.Messages, "Copilot is not configured", nil)
	}

	turns := dto.Messages
	if len(turns) > copilot.DefaultMaxHistory {
		turns = turns[len(turns)-copilot.DefaultMaxHistory:]
	}

	messages := make([]llmHandlers.Message, 0, len(turns))
	for _, t := range turns {
		role := llmHandlers.RoleUser
		if strings.EqualFold(t.Role, "assistant") {
			role = llmHandlers.RoleAssistant
		}
		messages = append(messages, llmHandlers.Message{Role: role, Content: t.Text})
	}

	ctx, cancel := context.WithTimeout(c.Context(), copilot.DefaultTimeout)
	defer cancel()

	reply, err := h.client.Chat(ctx, prompts.COPILOT_PROMPT, messages)
	if err != nil {
		return h.fail(c, dto.Messages, "Failed to generate a reply", err)
	}
	if strings.TrimSpace(reply) == "" {
		reply = copilot.FallbackNoAnswer
	}

	h.record(dto.Messages, reply, false, "")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"reply": reply,
	})
}

// fail logs the detail server-side and answers 500 with the generic error
// plus the safe fallback reply. Provider internals never reach the client.
func (h *CopilotHandler) fail(c *fiber.Ctx, turns []copilotTurn, msg string, err error) error {
	detail := msg
	if err != nil {
		log.Printf("copilot: %s: %v", msg, err)
		detail = msg + ": " + err.Error()
	} else {
		log.Printf("copilot: %s", msg)
	}

	h.record(turns, copilot.FallbackApology, true, detail)

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": msg,
		"reply": copilot.FallbackApology,
	})
}

func (h *CopilotHandler) record(turns []copilotTurn, reply string, failed bool, detail string) {
	if h.logs == nil {
		return
	}
	transcript, err := json.Marshal(turns)
	if err != nil {
		transcript = []byte("[]")
	}
	if err := h.logs.RecordExchange(transcript, reply, failed, detail); err != nil {
		log.Println(err, "Error recording copilot exchange")
	}
}
