package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/tutordesk/internal/model"
)

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	header := m.renderHeader()
	body := lipgloss.NewStyle().
		Width(m.width).
		Height(max(m.height-4, 0)).
		Render(m.current.View())
	statusBar := m.renderStatusBar()

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusBar)
}

func (m Model) renderHeader() string {
	title := TitleStyle.Render("TutorDesk")
	today := HelpStyle.Render(m.user.Now().Format("Mon 2006-01-02"))

	counts := m.user.Tasks().CountByStatus()
	summary := ""
	for _, s := range model.AllStatuses {
		summary += GetStatusStyle(s).Render(fmt.Sprintf("%s %d", s.Label(), counts[s])) + "  "
	}

	return HeaderStyle.Width(m.width).Render(
		lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", today, "   ", summary))
}

func (m Model) renderStatusBar() string {
	text := m.help.View(m.current)
	if m.message != "" {
		if m.errorMsg {
			text = StatusErrorStyle.Render(m.message)
		} else {
			text = StatusOKStyle.Render(m.message)
		}
	}
	return StatusBarStyle.Width(m.width).Render(text)
}
