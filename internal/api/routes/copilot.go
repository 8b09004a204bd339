package routes

import (
	"context"
	"log"
	"os"

	"studio-site-backend/internal/config"
	"studio-site-backend/internal/copilot"
	"studio-site-backend/internal/handlers"
	"studio-site-backend/internal/libraries"
	llmHandlers "studio-site-backend/internal/llm_handlers"
	"studio-site-backend/internal/repo"

	"github.com/gofiber/fiber/v2"
)

func registerCopilot(r fiber.Router) {
	provider := os.Getenv("COPILOT_PROVIDER")
	if provider == "" {
		provider = "groq"
	}

	client, err := llmHandlers.NewLLMClient(context.Background(), provider)
	if err != nil {
		// The endpoint stays up and answers with the safe fallback.
		log.Printf("copilot: provider %q unavailable: %v", provider, err)
		client = nil
	}

	logRepo := repo.NewCopilotLogRepository(config.DB)
	copilotHandler := handlers.NewCopilotHandler(client, logRepo)

	r.All("/copilot", copilotHandler.Exchange)

	// Live chat mode: one session per socket. Falls back to the keyword
	// policy when no provider is configured.
	var policy copilot.ReplyPolicy
	if client != nil {
		policy = copilot.NewModelPolicy(client)
	} else {
		policy = copilot.NewLocalPolicy()
	}
	r.Get("/copilot/ws", libraries.ChatSocketHandler(policy))
}
