package multiInput

import (
	"errors"
	"fmt"

	"framescout/cmd/steps"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#7D56F4")).Foreground(lipgloss.Color("#FAFAFA")).Bold(true).Padding(0, 1, 0)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B7DD8"))
)

// ErrCancelled is returned when the user backs out of a menu.
var ErrCancelled = errors.New("selection cancelled")

// Selection receives the option the user picked.
type Selection struct {
	Choice steps.Item
}

type model struct {
	cursor  int
	choices []steps.Item
	choice  *Selection
	header  string
	exit    *bool
}

func initialModel(choices []steps.Item, selection *Selection, header string, exitPtr *bool) model {
	return model{
		choices: choices,
		choice:  selection,
		header:  titleStyle.Render(header),
		exit:    exitPtr,
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			if m.exit != nil {
				*m.exit = true
			}
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
			m.choice.Choice = m.choices[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	s := m.header + "\n\n"

	for i, choice := range m.choices {
		cursor := " "
		title := focusedStyle.Render(choice.Title)
		if m.cursor == i {
			cursor = focusedStyle.Render(">")
			title = selectedItemStyle.Render(choice.Title)
		}

		description := descriptionStyle.Render(choice.Desc)

		s += fmt.Sprintf("%s %s\n  %s\n\n", cursor, title, description)
	}

	s += fmt.Sprintf("Press %s to confirm choice, %s to exit.\n\n",
		focusedStyle.Render("enter"), focusedStyle.Render("esc/q"))
	return s
}

// ShowMenu runs a single-select menu and returns the chosen item.
func ShowMenu(choices []steps.Item, header string) (steps.Item, error) {
	selection := &Selection{}
	exit := false

	m := initialModel(choices, selection, header, &exit)

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return steps.Item{}, fmt.Errorf("error running menu: %w", err)
	}

	final := finalModel.(model)
	if exit && final.choice.Choice.Title == "" {
		return steps.Item{}, ErrCancelled
	}

	return final.choice.Choice, nil
}
