package installer

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

func newSecretInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = placeholder
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	return ti
}

// GroqKeyStep collects the Groq API key used for copywriting
type GroqKeyStep struct {
	input textinput.Model
}

func NewGroqKeyStep() Step {
	return &GroqKeyStep{
		input: newSecretInput("gsk_..."),
	}
}

func (s *GroqKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *GroqKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.EnvVars["GROQ_API_KEY"] = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *GroqKeyStep) View(state *InstallState) string {
	return "Enter your Groq API Key:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}

// HuggingFaceTokenStep collects the Hugging Face token used for visuals
type HuggingFaceTokenStep struct {
	input textinput.Model
}

func NewHuggingFaceTokenStep() Step {
	return &HuggingFaceTokenStep{
		input: newSecretInput("hf_..."),
	}
}

func (s *HuggingFaceTokenStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *HuggingFaceTokenStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.EnvVars["HF_API_TOKEN"] = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *HuggingFaceTokenStep) View(state *InstallState) string {
	return "Enter your Hugging Face API Token:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
