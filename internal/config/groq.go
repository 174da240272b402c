package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/brandgen/pkg/log"
)

type GroqConfig struct {
	APIKey      string  `env:"GROQ_API_KEY,required,notEmpty"`
	Model       string  `env:"GROQ_MODEL" envDefault:"llama-3.3-70b-versatile"`
	Temperature float64 `env:"GROQ_TEMPERATURE" envDefault:"0.6"`
	MaxTokens   int     `env:"GROQ_MAX_TOKENS" envDefault:"1500"`
}

func NewGroqConfig(ctx context.Context) *GroqConfig {
	c := &GroqConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse Groq config")
	}
	return c
}
