// Package picker is a small full-screen list for choosing one option with
// the arrow keys.
package picker

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandevgo/fakenews/internal/core"
	"github.com/sandevgo/fakenews/internal/service/ui"
)

type model struct {
	title    string
	choices  []string
	cursor   int
	chosen   int
	quitting bool
}

func newModel(title string, choices []string) model {
	return model{title: title, choices: choices, chosen: -1}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "ctrl+c", "q", "esc":
		m.quitting = true
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}
	case "enter":
		m.chosen = m.cursor
		return m, tea.Quit
	}
	return m, nil
}

func (m model) View() string {
	if m.quitting || m.chosen >= 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(ui.TitleStyle.Render(m.title) + "\n")
	for i, choice := range m.choices {
		if m.cursor == i {
			b.WriteString(ui.SelectedStyle.Render(fmt.Sprintf("❯ %s", choice)) + "\n")
		} else {
			b.WriteString(ui.ItemStyle.Render(fmt.Sprintf("  %s", choice)) + "\n")
		}
	}
	b.WriteString("\n(↑/↓ to move, enter to choose, q to quit)\n")
	return b.String()
}

// Pick shows the list and returns the chosen option. Quitting without a
// choice returns core.ErrExit.
func Pick(title string, choices []string, opts ...tea.ProgramOption) (string, error) {
	if len(choices) == 0 {
		return "", fmt.Errorf("nothing to pick: %w", core.ErrInvalidSelection)
	}

	p := tea.NewProgram(newModel(title, choices), opts...)
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	m := final.(model)
	if m.chosen < 0 {
		return "", core.ErrExit
	}
	return m.choices[m.chosen], nil
}
