package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type menuEntry struct {
	label string
	hint  string
	id    ViewID
	quit  bool
}

var menuEntries = []menuEntry{
	{label: "Clients", hint: "browse and edit clients", id: ViewClients},
	{label: "Tasks", hint: "browse, filter and edit tasks", id: ViewTasks},
	{label: "Add client", hint: "register a new student", id: ViewAddClient},
	{label: "Add task", hint: "schedule a lesson or assignment", id: ViewAddTask},
	{label: "Quit", quit: true},
}

type menuView struct {
	cursor int
}

func newMenuView() *menuView {
	return &menuView{}
}

func (v *menuView) Init() tea.Cmd { return nil }

func (v *menuView) Typing() bool { return false }

func (v *menuView) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch {
	case key.Matches(km, keys.Quit), key.Matches(km, keys.Escape):
		return v, tea.Quit
	case key.Matches(km, keys.Up):
		v.cursor = wrapIndex(v.cursor-1, len(menuEntries))
	case key.Matches(km, keys.Down):
		v.cursor = wrapIndex(v.cursor+1, len(menuEntries))
	case key.Matches(km, keys.Enter):
		e := menuEntries[v.cursor]
		if e.quit {
			return v, tea.Quit
		}
		return v, switchTo(e.id)
	}
	return v, nil
}

func (v *menuView) View() string {
	s := TitleStyle.Render("Menu") + "\n\n"
	for i, e := range menuEntries {
		cursor := "  "
		style := MenuItemStyle
		if i == v.cursor {
			cursor = "❯ "
			style = MenuItemSelectedStyle
		}
		line := style.Render(cursor + e.label)
		if e.hint != "" {
			line = lipgloss.JoinHorizontal(lipgloss.Top, lipgloss.NewStyle().Width(18).Render(line), HelpStyle.Render(e.hint))
		}
		s += line + "\n"
	}
	return BodyStyle.Render(s)
}

func (v *menuView) ShortHelp() []key.Binding {
	return []key.Binding{keys.Up, keys.Down, keys.Enter, keys.Quit}
}

func (v *menuView) FullHelp() [][]key.Binding {
	return [][]key.Binding{v.ShortHelp(), {keys.Help}}
}
