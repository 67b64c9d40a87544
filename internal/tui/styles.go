package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/existflow/tutordesk/internal/model"
)

// Color palette
var (
	// Urgency colors
	UrgencySoon = lipgloss.Color("#FF6B6B") // Red
	UrgencyWeek = lipgloss.Color("#FFB347") // Orange
	UrgencyLong = lipgloss.Color("#4ECDC4") // Blue

	// UI colors
	Primary   = lipgloss.Color("#4ECDC4")
	Secondary = lipgloss.Color("#6C757D")
	Surface   = lipgloss.Color("#16213e")
	Text      = lipgloss.Color("#FFFFFF")
	TextMuted = lipgloss.Color("#888888")
	Border    = lipgloss.Color("#333333")
	Danger    = lipgloss.Color("#FF5555")
	Success   = lipgloss.Color("#95E1A3")
)

// Styles
var (
	// Header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary)

	// Body
	BodyStyle = lipgloss.NewStyle().
			Padding(1, 2)

	// Menu item
	MenuItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	MenuItemSelectedStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Background(Surface).
				Bold(true)

	// Form labels
	LabelStyle = lipgloss.NewStyle().
			Width(14).
			Foreground(TextMuted)

	LabelFocusedStyle = lipgloss.NewStyle().
				Width(14).
				Foreground(Primary).
				Bold(true)

	// Column being edited
	ColumnStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextMuted).
			Padding(0, 1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(Border)

	StatusErrorStyle = lipgloss.NewStyle().Foreground(Danger).Bold(true)
	StatusOKStyle    = lipgloss.NewStyle().Foreground(Success)

	// Input modal
	ModalStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(TextMuted)
)

// GetStatusStyle returns the style for a task urgency bucket
func GetStatusStyle(status model.TaskStatus) lipgloss.Style {
	switch status {
	case model.DueSoon:
		return lipgloss.NewStyle().Foreground(UrgencySoon).Bold(true)
	case model.DueThisWeek:
		return lipgloss.NewStyle().Foreground(UrgencyWeek).Bold(true)
	default:
		return lipgloss.NewStyle().Foreground(UrgencyLong)
	}
}

// FormatStatus returns a colored status label
func FormatStatus(status model.TaskStatus) string {
	return GetStatusStyle(status).Render(status.Label())
}

func tableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Border).
		BorderBottom(true).
		Bold(true).
		Foreground(Primary)
	s.Selected = s.Selected.
		Foreground(Text).
		Background(Surface).
		Bold(true)
	return s
}
