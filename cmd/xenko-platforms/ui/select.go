// Package ui implements the interactive platform selection prompt.
package ui

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Aminator9000/xenko/platforms"
)

// ErrCanceled indicates the user aborted the selection.
var ErrCanceled = errors.New("selection canceled")

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// selectModel holds the state for the platform multi-select prompt.
type selectModel struct {
	choices  []platforms.Platform
	cursor   int
	selected map[int]struct{}
	done     bool
	canceled bool
}

func newSelectModel(choices, current []platforms.Platform) selectModel {
	selected := make(map[int]struct{})
	for i, c := range choices {
		for _, cur := range current {
			if c == cur {
				selected[i] = struct{}{}
			}
		}
	}
	return selectModel{choices: choices, selected: selected}
}

func (m selectModel) Init() tea.Cmd { return nil }

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "ctrl+c", "q", "esc":
		m.canceled = true
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.choices)-1 {
			m.cursor++
		}

	case " ", "x":
		if _, ok := m.selected[m.cursor]; ok {
			delete(m.selected, m.cursor)
		} else {
			m.selected[m.cursor] = struct{}{}
		}

	case "enter":
		m.done = true
		return m, tea.Quit
	}

	return m, nil
}

func (m selectModel) View() string {
	if m.done || m.canceled {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render("Select target platforms"))
	sb.WriteString("\n\n")

	for i, p := range m.choices {
		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
		}

		mark := "[ ]"
		label := fmt.Sprintf("%-8s %s", p, p.TargetFramework())
		if _, ok := m.selected[i]; ok {
			mark = selectedStyle.Render("[x]")
			label = selectedStyle.Render(label)
		}

		sb.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, label))
	}

	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("space: toggle  enter: confirm  q: cancel"))
	sb.WriteString("\n")
	return sb.String()
}

// SelectPlatforms prompts for a platform selection, pre-checking the
// platforms the project currently targets.
func SelectPlatforms(choices, current []platforms.Platform) ([]platforms.Platform, error) {
	program := tea.NewProgram(newSelectModel(choices, current))

	final, err := program.Run()
	if err != nil {
		return nil, fmt.Errorf("platform selection failed: %w", err)
	}

	m := final.(selectModel)
	if m.canceled {
		return nil, ErrCanceled
	}

	var out []platforms.Platform
	for i, p := range m.choices {
		if _, ok := m.selected[i]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}
