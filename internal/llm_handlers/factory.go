package llmHandlers

import (
	"context"
	"fmt"
	"os"
)

type Provider string

const (
	ProviderOpenAI          Provider = "openai"
	ProviderGroq            Provider = "groq" // OpenAI-compatible endpoint
	ProviderGemini          Provider = "gemini"
	ProviderVertexAnthropic Provider = "vertex_anthropic"
)

// NewLLMClient builds the configured provider client. Credentials come from
// the environment.
func NewLLMClient(ctx context.Context, kind string) (Client, error) {
	switch Provider(kind) {
	case ProviderOpenAI:
		return NewLangChainClient(LangChainConfig{
			Model:  os.Getenv("OPENAI_MODEL_NAME"),
			APIKey: os.Getenv("OPENAI_API_KEY"),
		})
	case ProviderGroq:
		return NewLangChainClient(LangChainConfig{
			Model:   os.Getenv("GROQ_MODEL_NAME"),
			BaseURL: os.Getenv("GROQ_BASE_URL"),
			APIKey:  os.Getenv("GROQ_API_KEY"),
		})
	case ProviderGemini:
		return NewGenaiGeminiClient(ctx)
	case ProviderVertexAnthropic:
		return NewVertexAnthropicClient(), nil
	default:
		return nil, fmt.Errorf("unknown provider %s", kind)
	}
}
