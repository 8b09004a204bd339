package copilot

import (
	"context"
	"log"
	"strings"
	"time"

	"studio-site-backend/internal/copilot/prompts"
	llmHandlers "studio-site-backend/internal/llm_handlers"
)

// ModelPolicy folds a provider client into the always-resolves policy
// contract. Used where the session runs server-side (the websocket live
// chat) instead of going back out through the HTTP proxy.
type ModelPolicy struct {
	Client     llmHandlers.Client
	MaxHistory int
	Timeout    time.Duration
}

func NewModelPolicy(client llmHandlers.Client) *ModelPolicy {
	return &ModelPolicy{
		Client:     client,
		MaxHistory: DefaultMaxHistory,
		Timeout:    DefaultTimeout,
	}
}

func (p *ModelPolicy) Reply(ctx context.Context, turns []ChatTurn) string {
	turns = CapHistory(turns, p.MaxHistory)

	timeout := p.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	messages := make([]llmHandlers.Message, 0, len(turns))
	for _, t := range turns {
		role := llmHandlers.RoleUser
		if t.Role == RoleAssistant {
			role = llmHandlers.RoleAssistant
		}
		messages = append(messages, llmHandlers.Message{Role: role, Content: t.Text})
	}

	reply, err := p.Client.Chat(ctx, prompts.COPILOT_PROMPT, messages)
	if err != nil {
		log.Printf("copilot: model reply failed: %v", err)
		return FallbackApology
	}
	if strings.TrimSpace(reply) == "" {
		return FallbackNoAnswer
	}
	return reply
}
