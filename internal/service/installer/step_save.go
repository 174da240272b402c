package installer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sandevgo/brandgen/internal/config"
	"github.com/sandevgo/brandgen/pkg/env"
	tea "github.com/charmbracelet/bubbletea"
)

// envSettings mirrors the wizard answers so env.MarshalEnv can render them
// with the same keys the config package parses.
type envSettings struct {
	GroqAPIKey     string `env:"GROQ_API_KEY"`
	HFAPIToken     string `env:"HF_API_TOKEN"`
	EnableHTTP     string `env:"ENABLE_HTTP"`
	EnableTelegram string `env:"ENABLE_TELEGRAM"`
	TelegramToken  string `env:"TELEGRAM_TOKEN"`
	TelegramOwner  string `env:"TELEGRAM_OWNER_ID"`
	PersistHistory string `env:"BRANDGEN_PERSIST_HISTORY"`
}

// SaveEnvStep writes the collected configuration to .env file
type SaveEnvStep struct {
	err   error
	saved bool
}

func NewSaveEnvStep() Step {
	return &SaveEnvStep{}
}

func (s *SaveEnvStep) Init() tea.Cmd {
	return func() tea.Msg { return nextMsg{} }
}

func (s *SaveEnvStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if s.saved {
		return nil, nil
	}

	// Perform save synchronously (fast operation)
	path := config.GetRuntimePath()

	if err := os.MkdirAll(path, 0755); err != nil {
		s.err = fmt.Errorf("failed to create runtime directory: %w", err)
		return s, nil
	}

	envPath := filepath.Join(path, ".env")

	// Check if .env already exists
	if _, err := os.Stat(envPath); err == nil {
		s.err = fmt.Errorf(".env file already exists at %s", envPath)
		return s, nil
	}

	settings := &envSettings{
		GroqAPIKey:     state.EnvVars["GROQ_API_KEY"],
		HFAPIToken:     state.EnvVars["HF_API_TOKEN"],
		EnableHTTP:     state.EnvVars["ENABLE_HTTP"],
		EnableTelegram: state.EnvVars["ENABLE_TELEGRAM"],
		TelegramToken:  state.EnvVars["TELEGRAM_TOKEN"],
		TelegramOwner:  state.EnvVars["TELEGRAM_OWNER_ID"],
		PersistHistory: state.EnvVars["BRANDGEN_PERSIST_HISTORY"],
	}

	content, err := env.MarshalEnv(settings)
	if err != nil {
		s.err = err
		return s, nil
	}

	if err := os.WriteFile(envPath, []byte(content), 0600); err != nil {
		s.err = err
		return s, nil
	}

	s.saved = true
	return nil, nil // Signal completion
}

func (s *SaveEnvStep) View(state *InstallState) string {
	if s.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v", s.err)) + "\n\n(press ctrl+c to quit)\n"
	}
	if s.saved {
		return "Configuration saved successfully!\n"
	}
	return "Saving configuration...\n"
}
