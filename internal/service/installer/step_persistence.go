package installer

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// PersistenceStep chooses between in-memory and on-disk history
type PersistenceStep struct {
	choices []string
	cursor  int
}

func NewPersistenceStep() Step {
	return &PersistenceStep{
		choices: []string{"In-memory (history lost on restart)", "SQLite (history survives restarts)"},
		cursor:  0,
	}
}

func (s *PersistenceStep) Init() tea.Cmd {
	return nil
}

func (s *PersistenceStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			state.EnvVars["BRANDGEN_PERSIST_HISTORY"] = fmt.Sprintf("%t", s.cursor == 1)
			return nil, nil
		}
	}
	return s, nil
}

func (s *PersistenceStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("How should generation history be stored?\n\n")
	for i, choice := range s.choices {
		cursor := " "
		if s.cursor == i {
			cursor = "❯"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}
