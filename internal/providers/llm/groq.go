package llm

import (
	"github.com/sandevgo/brandgen/internal/config"
)

// Groq speaks the OpenAI chat-completion dialect.
type Groq struct {
	*OpenAICompatible
}

func NewGroq(cfg *config.GroqConfig) *Groq {
	return NewGroqWithBaseURL("https://api.groq.com/openai", cfg)
}

// NewGroqWithBaseURL exists so tests can point the client at a local server.
func NewGroqWithBaseURL(baseURL string, cfg *config.GroqConfig) *Groq {
	return &Groq{
		OpenAICompatible: NewOpenAICompatible(OpenAICompatibleConfig{
			BaseURL:     baseURL,
			APIKey:      cfg.APIKey,
			Model:       cfg.Model,
			AuthHeader:  "Authorization",
			AuthPrefix:  "Bearer ",
			Temperature: cfg.Temperature,
			MaxTokens:   cfg.MaxTokens,
		}),
	}
}
