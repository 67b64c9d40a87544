package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tutordesk/internal/logger"
)

// Init initializes the current view
func (m Model) Init() tea.Cmd {
	return m.current.Init()
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m.forward(m.bodySize())

	case switchViewMsg:
		return m.switchView(msg.id)

	case statusMsg:
		m.message = msg.text
		m.errorMsg = msg.isErr
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			return m, tea.Quit
		}
		if !m.current.Typing() && key.Matches(msg, keys.Help) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		m.message = ""
		m.errorMsg = false
	}

	return m.forward(msg)
}

func (m Model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.current, cmd = m.current.Update(msg)
	return m, cmd
}

// switchView builds a fresh view so tables always show current data
func (m Model) switchView(id ViewID) (tea.Model, tea.Cmd) {
	logger.Debug("Switching view",
		logger.F("from", m.currentID.String()),
		logger.F("to", id.String()))

	m.current = m.factory.Build(id)
	m.currentID = id
	m.help.ShowAll = false

	var sizeCmd tea.Cmd
	if m.width > 0 {
		m.current, sizeCmd = m.current.Update(m.bodySize())
	}
	return m, tea.Batch(m.current.Init(), sizeCmd)
}

// bodySize is the space left for a view below the header and above the
// status bar.
func (m Model) bodySize() tea.WindowSizeMsg {
	h := m.height - 4
	if h < 0 {
		h = 0
	}
	return tea.WindowSizeMsg{Width: m.width, Height: h}
}
