package config

import (
	"context"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sandevgo/brandgen/pkg/log"
)

type HuggingFaceConfig struct {
	APIToken     string `env:"HF_API_TOKEN,required,notEmpty"`
	DiffusionURL string `env:"HF_DIFFUSION_URL" envDefault:"https://router.huggingface.co/hf-inference/models/stabilityai/stable-diffusion-xl-base-1.0"`
	CaptionURL   string `env:"HF_CAPTION_URL" envDefault:"https://router.huggingface.co/hf-inference/models/Salesforce/blip-image-captioning-large"`

	// Cold-start handling: 503 means the model is still loading
	WarmupDelay   time.Duration `env:"HF_WARMUP_DELAY" envDefault:"4s"`
	WarmupRetries int           `env:"HF_WARMUP_RETRIES" envDefault:"2"`
}

func NewHuggingFaceConfig(ctx context.Context) *HuggingFaceConfig {
	c := &HuggingFaceConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse HuggingFace config")
	}
	return c
}
