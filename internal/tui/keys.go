package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
)

// keyMap defines all key bindings
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	Tab       key.Binding
	ShiftTab  key.Binding
	Enter     key.Binding
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	Confirm   key.Binding
	FilterAll key.Binding
	FilterOne key.Binding
	FilterTwo key.Binding
	FilterThr key.Binding
	Help      key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Escape    key.Binding
	PickPrev  key.Binding
	PickNext  key.Binding
}

var keys = keyMap{
	Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Left:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev column")),
	Right:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next column")),
	Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
	ShiftTab:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
	Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select/save")),
	Add:       key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
	Edit:      key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit cell")),
	Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	Confirm:   key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "confirm")),
	FilterAll: key.NewBinding(key.WithKeys("0"), key.WithHelp("0", "all")),
	FilterOne: key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "due soon")),
	FilterTwo: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "this week")),
	FilterThr: key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "long term")),
	Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	Escape:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	PickPrev:  key.NewBinding(key.WithKeys("left", "up"), key.WithHelp("←", "prev client")),
	PickNext:  key.NewBinding(key.WithKeys("right", "down"), key.WithHelp("→", "next client")),
}

// tableKeys is the bubbles table keymap with the bindings we use for
// actions moved out of the way.
func tableKeys() table.KeyMap {
	km := table.DefaultKeyMap()
	km.HalfPageDown.SetKeys("ctrl+d")
	km.HalfPageUp.SetKeys("ctrl+u")
	return km
}
