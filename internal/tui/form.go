package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type slotKind int

const (
	slotInput slotKind = iota
	slotPicker
	slotArea
)

type formSlot struct {
	label string
	kind  slotKind
	input textinput.Model
}

// form is a vertical list of labelled fields with one focused at a time.
// At most one slot is a textarea; a picker slot is drawn by the owner.
type form struct {
	slots []formSlot
	area  textarea.Model
	focus int
}

func inputSlot(label, placeholder string, limit int) formSlot {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	ti.Prompt = ""
	return formSlot{label: label, kind: slotInput, input: ti}
}

func newForm(slots ...formSlot) form {
	ta := textarea.New()
	ta.Placeholder = "Optional notes..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 1024
	ta.SetWidth(42)
	ta.SetHeight(3)
	// Enter submits the form
	ta.KeyMap.InsertNewline.SetKeys("alt+enter", "ctrl+j")

	f := form{slots: slots, area: ta}
	f.focusSlot(0)
	return f
}

func (f *form) focused() slotKind {
	return f.slots[f.focus].kind
}

func (f *form) focusSlot(i int) tea.Cmd {
	f.focus = wrapIndex(i, len(f.slots))
	for j := range f.slots {
		f.slots[j].input.Blur()
	}
	f.area.Blur()

	switch f.slots[f.focus].kind {
	case slotInput:
		return f.slots[f.focus].input.Focus()
	case slotArea:
		return f.area.Focus()
	}
	return nil
}

func (f *form) next() tea.Cmd { return f.focusSlot(f.focus + 1) }
func (f *form) prev() tea.Cmd { return f.focusSlot(f.focus - 1) }

// value returns the text of slot i
func (f *form) value(i int) string {
	switch f.slots[i].kind {
	case slotInput:
		return f.slots[i].input.Value()
	case slotArea:
		return f.area.Value()
	}
	return ""
}

func (f *form) setValue(i int, v string) {
	switch f.slots[i].kind {
	case slotInput:
		f.slots[i].input.SetValue(v)
	case slotArea:
		f.area.SetValue(v)
	}
}

// update forwards msg to the focused text field
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch f.focused() {
	case slotInput:
		f.slots[f.focus].input, cmd = f.slots[f.focus].input.Update(msg)
	case slotArea:
		f.area, cmd = f.area.Update(msg)
	}
	return cmd
}

func (f *form) render(title string, picker func() string) string {
	rows := []string{TitleStyle.Render(title), ""}
	for i, s := range f.slots {
		label := LabelStyle.Render(s.label)
		if i == f.focus {
			label = LabelFocusedStyle.Render(s.label)
		}

		var field string
		switch s.kind {
		case slotInput:
			field = s.input.View()
		case slotArea:
			field = f.area.View()
		case slotPicker:
			if picker != nil {
				field = picker()
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, field), "")
	}
	rows = append(rows, HelpStyle.Render("Tab/Shift+Tab:move  Enter:save  Esc:back"))
	return ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
