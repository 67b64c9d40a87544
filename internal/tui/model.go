package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tutordesk/internal/config"
	apperrors "github.com/existflow/tutordesk/internal/errors"
	"github.com/existflow/tutordesk/internal/logger"
	"github.com/existflow/tutordesk/internal/model"
)

// View is one screen of the application. Views receive every message the
// root model does not consume and ask for navigation with switchTo.
type View interface {
	help.KeyMap
	Init() tea.Cmd
	Update(msg tea.Msg) (View, tea.Cmd)
	View() string
	// Typing reports whether keystrokes currently go to a text field
	Typing() bool
}

// switchViewMsg asks the root model to replace the current view
type switchViewMsg struct {
	id ViewID
}

// statusMsg sets the status bar text
type statusMsg struct {
	text  string
	isErr bool
}

func switchTo(id ViewID) tea.Cmd {
	return func() tea.Msg { return switchViewMsg{id: id} }
}

func setStatus(format string, args ...interface{}) tea.Cmd {
	text := fmt.Sprintf(format, args...)
	return func() tea.Msg { return statusMsg{text: text} }
}

// errStatus reports err in the status bar using its user-facing message
func errStatus(err error) tea.Cmd {
	text := apperrors.UserMessage(err)
	return func() tea.Msg { return statusMsg{text: text, isErr: true} }
}

// rejectFields describes a rejected input for the debug log, including
// the broken rule when err carries one
func rejectFields(err error, fields ...logger.Field) []logger.Field {
	fields = append(fields, logger.F("error", err.Error()))
	if kind, ok := apperrors.KindOf(err); ok {
		fields = append(fields, logger.F("rule", string(kind)))
	}
	return fields
}

// Model is the main TUI model
type Model struct {
	user    *model.User
	factory Factory

	current   View
	currentID ViewID

	// UI state
	width    int
	height   int
	help     help.Model
	message  string
	errorMsg bool
}

// NewModel creates a new TUI model starting on the main menu
func NewModel(user *model.User, cfg *config.Config) Model {
	logger.Info("Initializing TUI model",
		logger.F("clients", user.Clients().Len()),
		logger.F("tasks", user.Tasks().Len()))

	f := NewFactory(user, cfg)
	return Model{
		user:      user,
		factory:   f,
		current:   f.Build(ViewMenu),
		currentID: ViewMenu,
		help:      help.New(),
	}
}

// CurrentView returns the id of the view on screen
func (m Model) CurrentView() ViewID {
	return m.currentID
}
