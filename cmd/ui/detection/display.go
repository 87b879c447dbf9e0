package detection

import (
	"fmt"
	"strings"

	"framescout/pkg/detector"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle        = lipgloss.NewStyle().Background(lipgloss.Color("#7D56F4")).Foreground(lipgloss.Color("#FAFAFA")).Bold(true).Padding(0, 1, 0)
	focusedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
	selectedItemStyle = lipgloss.NewStyle().PaddingLeft(1).Foreground(lipgloss.Color("170")).Bold(true)
	descriptionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8B7DD8"))
	helpStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	mutedStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type model struct {
	report        detector.Report
	offerRemember bool
	confirmed     bool
	quitting      bool
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.offerRemember {
			m.quitting = true
			return m, tea.Quit
		}
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit
		case "y", "Y", "enter":
			m.confirmed = true
			m.quitting = true
			return m, tea.Quit
		case "n", "N", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m model) View() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("Scan Results"))
	s.WriteString("\n\n")

	reportBox := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#7D56F4")).
		Padding(1, 2).
		Width(64)

	s.WriteString(reportBox.Render(renderReport(m.report)))
	s.WriteString("\n\n")

	if m.offerRemember {
		s.WriteString(focusedStyle.Render("Remember this framework choice for this project?"))
		s.WriteString("\n\n")
		s.WriteString(helpStyle.Render("Press "))
		s.WriteString(focusedStyle.Render("y"))
		s.WriteString(helpStyle.Render(" to remember, "))
		s.WriteString(focusedStyle.Render("n"))
		s.WriteString(helpStyle.Render(" to skip, or "))
		s.WriteString(focusedStyle.Render("q"))
		s.WriteString(helpStyle.Render(" to quit"))
	} else {
		s.WriteString(helpStyle.Render("Press any key to close"))
	}

	return s.String()
}

func renderReport(report detector.Report) string {
	var content strings.Builder

	content.WriteString(focusedStyle.Render("Framework: "))
	if report.Framework != nil {
		content.WriteString(selectedItemStyle.Render(report.Framework.Name))
		content.WriteString(mutedStyle.Render("  (" + string(report.Framework.Family) + ")"))
	} else {
		content.WriteString(mutedStyle.Render("none detected"))
	}
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Bundler: "))
	if b, ok := detector.BundlerByType(report.Bundler); ok {
		content.WriteString(selectedItemStyle.Render(b.Name))
	} else {
		content.WriteString(mutedStyle.Render("none"))
	}
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Language: "))
	content.WriteString(selectedItemStyle.Render(languageName(report.Language)))
	content.WriteString("\n")

	content.WriteString(focusedStyle.Render("Package manager: "))
	content.WriteString(selectedItemStyle.Render(report.PackageManager))
	content.WriteString("\n")

	if report.NPMRegistry != "" {
		content.WriteString(focusedStyle.Render("npm registry: "))
		content.WriteString(selectedItemStyle.Render(report.NPMRegistry))
		content.WriteString("\n")
	}

	if report.Pinned {
		content.WriteString("\n")
		content.WriteString(successStyle.Render("Pinned"))
		content.WriteString(descriptionStyle.Render(" via " + detector.PinFileName))
		content.WriteString("\n")
	}

	if len(report.Signals) > 0 {
		content.WriteString("\n")
		content.WriteString(focusedStyle.Render("Signals:"))
		content.WriteString("\n")
		for _, signal := range report.Signals {
			content.WriteString(successStyle.Render("  ✓ "))
			content.WriteString(descriptionStyle.Render(signal))
			content.WriteString("\n")
		}
	}

	return content.String()
}

func languageName(lang string) string {
	switch lang {
	case detector.LanguageTS:
		return "TypeScript"
	case detector.LanguageJS:
		return "JavaScript"
	default:
		return lang
	}
}

// ShowScanResults displays a scan report. When offerRemember is set it asks
// whether to remember the framework choice and reports the answer.
func ShowScanResults(report detector.Report, offerRemember bool) (bool, error) {
	m := model{
		report:        report,
		offerRemember: offerRemember,
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("error showing scan results: %w", err)
	}

	final := finalModel.(model)
	return final.confirmed, nil
}
