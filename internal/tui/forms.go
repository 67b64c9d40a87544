package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tutordesk/internal/logger"
	"github.com/existflow/tutordesk/internal/model"
	"github.com/existflow/tutordesk/internal/validation"
)

// Add-client form slots
const (
	clientSlotStudent = iota
	clientSlotParent
	clientSlotPhone
	clientSlotDescription
)

type clientForm struct {
	user *model.User
	form form
}

func newClientForm(user *model.User) *clientForm {
	return &clientForm{
		user: user,
		form: newForm(
			inputSlot("Student name", "Ala", 64),
			inputSlot("Parent name", "Maria", 64),
			inputSlot("Phone", "9 digits, optional", 9),
			formSlot{label: "Description", kind: slotArea},
		),
	}
}

func (v *clientForm) Init() tea.Cmd { return textinput.Blink }

func (v *clientForm) Typing() bool { return true }

func (v *clientForm) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, v.form.update(msg)
	}

	switch {
	case key.Matches(km, keys.Escape):
		return v, switchTo(ViewMenu)
	case key.Matches(km, keys.Tab):
		return v, v.form.next()
	case key.Matches(km, keys.ShiftTab):
		return v, v.form.prev()
	case key.Matches(km, keys.Enter):
		return v, v.submit()
	}
	return v, v.form.update(msg)
}

func (v *clientForm) submit() tea.Cmd {
	c, err := model.NewClient(
		v.form.value(clientSlotStudent),
		v.form.value(clientSlotParent),
		v.form.value(clientSlotPhone),
		v.form.value(clientSlotDescription),
	)
	if err != nil {
		logger.Debug("Client form rejected", rejectFields(err)...)
		return errStatus(err)
	}

	id := v.user.AddClient(c)
	logger.Info("Client added", logger.F("id", id))
	return tea.Batch(setStatus("Client %d added.", id), switchTo(ViewClients))
}

func (v *clientForm) View() string {
	return BodyStyle.Render(v.form.render("Add client", nil))
}

func (v *clientForm) ShortHelp() []key.Binding {
	return []key.Binding{keys.Tab, keys.ShiftTab, keys.Enter, keys.Escape}
}

func (v *clientForm) FullHelp() [][]key.Binding {
	return [][]key.Binding{v.ShortHelp()}
}

// Add-task form slots
const (
	taskSlotSubject = iota
	taskSlotDate
	taskSlotClient
	taskSlotTime
	taskSlotDescription
)

type taskForm struct {
	user    *model.User
	form    form
	clients []*model.Client
	pick    int
}

func newTaskForm(user *model.User) *taskForm {
	v := &taskForm{
		user:    user,
		clients: user.ListClients(),
		form: newForm(
			inputSlot("Subject", "Matematyka", 64),
			inputSlot("Date", validation.DateLayout, 10),
			formSlot{label: "Client", kind: slotPicker},
			inputSlot("Time", "HH:mm", 5),
			formSlot{label: "Description", kind: slotArea},
		),
	}
	v.form.setValue(taskSlotDate, user.Now().Format(validation.DateLayout))
	return v
}

func (v *taskForm) Init() tea.Cmd { return textinput.Blink }

func (v *taskForm) Typing() bool { return true }

func (v *taskForm) Update(msg tea.Msg) (View, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, v.form.update(msg)
	}

	switch {
	case key.Matches(km, keys.Escape):
		return v, switchTo(ViewMenu)
	case key.Matches(km, keys.Tab):
		return v, v.form.next()
	case key.Matches(km, keys.ShiftTab):
		return v, v.form.prev()
	case key.Matches(km, keys.Enter):
		return v, v.submit()
	}

	if v.form.focused() == slotPicker {
		switch {
		case key.Matches(km, keys.PickPrev):
			v.pick = wrapIndex(v.pick-1, len(v.clients))
		case key.Matches(km, keys.PickNext):
			v.pick = wrapIndex(v.pick+1, len(v.clients))
		}
		return v, nil
	}
	return v, v.form.update(msg)
}

// selectedClient returns the picked client, or nil when there are none
func (v *taskForm) selectedClient() *model.Client {
	if len(v.clients) == 0 {
		return nil
	}
	return v.clients[v.pick]
}

func (v *taskForm) submit() tea.Cmd {
	c := v.selectedClient()
	if c == nil {
		return func() tea.Msg {
			return statusMsg{text: "Add a client before adding tasks.", isErr: true}
		}
	}

	t, err := model.NewTask(
		v.form.value(taskSlotSubject),
		v.form.value(taskSlotDescription),
		c.ID(),
		v.form.value(taskSlotDate),
		v.form.value(taskSlotTime),
	)
	if err != nil {
		logger.Debug("Task form rejected", rejectFields(err)...)
		return errStatus(err)
	}

	id := v.user.AddTask(t)
	logger.Info("Task added",
		logger.F("id", id),
		logger.F("client", c.ID()),
		logger.F("status", t.StatusAt(v.user.Now()).String()))
	return tea.Batch(setStatus("Task %d added.", id), switchTo(ViewTasks))
}

func (v *taskForm) renderPicker() string {
	c := v.selectedClient()
	if c == nil {
		return StatusErrorStyle.Render("no clients yet")
	}
	label := fmt.Sprintf("‹ %s ›", c.String())
	if v.form.focused() == slotPicker {
		return ColumnStyle.Render(label)
	}
	return label
}

func (v *taskForm) View() string {
	return BodyStyle.Render(v.form.render("Add task", v.renderPicker))
}

func (v *taskForm) ShortHelp() []key.Binding {
	if v.form.focused() == slotPicker {
		return []key.Binding{keys.PickPrev, keys.PickNext, keys.Tab, keys.Enter, keys.Escape}
	}
	return []key.Binding{keys.Tab, keys.ShiftTab, keys.Enter, keys.Escape}
}

func (v *taskForm) FullHelp() [][]key.Binding {
	return [][]key.Binding{v.ShortHelp()}
}
