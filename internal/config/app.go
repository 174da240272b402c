package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/sandevgo/brandgen/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"BRANDGEN_RUNTIME_PATH" envDefault:".brandgen"`

	// Transport Flags
	EnableHTTP     bool `env:"ENABLE_HTTP" envDefault:"true"`
	EnableTelegram bool `env:"ENABLE_TELEGRAM" envDefault:"false"`

	// History
	PersistHistory bool `env:"BRANDGEN_PERSIST_HISTORY" envDefault:"false"`
	HistoryLimit   int  `env:"BRANDGEN_HISTORY_LIMIT" envDefault:"50"`

	// Derive the style description from an uploaded reference image
	EnableCaptioning bool `env:"BRANDGEN_AUTO_STYLE" envDefault:"false"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "brandgen.db")
}

func (c AppConfig) IsTelegramSelected() bool {
	return c.EnableTelegram
}

func (c AppConfig) IsHTTPSelected() bool {
	return c.EnableHTTP
}
