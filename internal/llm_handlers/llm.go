package llmHandlers

import (
	"context"
)

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one provider-agnostic chat turn.
type Message struct {
	Role    MessageRole
	Content string
}

// Client is the provider-agnostic chat surface. Implementations make one
// request and return the full reply text.
type Client interface {
	Chat(ctx context.Context, systemMessage string, messages []Message) (string, error)
}
