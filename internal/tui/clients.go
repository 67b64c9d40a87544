package tui

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tutordesk/internal/logger"
	"github.com/existflow/tutordesk/internal/model"
)

// Client table columns
const (
	clientColID = iota
	clientColStudent
	clientColParent
	clientColPhone
	clientColDescription
)

type clientsView struct {
	user          *model.User
	confirmDelete bool
	grid          grid
}

func newClientsView(user *model.User, confirmDelete bool) *clientsView {
	v := &clientsView{
		user:          user,
		confirmDelete: confirmDelete,
		grid: newGrid([]gridColumn{
			{title: "ID", width: 4},
			{title: "Student", width: 16, editable: true},
			{title: "Parent", width: 16, editable: true},
			{title: "Phone", width: 11, editable: true},
			{title: "Description", width: 32, editable: true},
		}),
	}
	v.refresh()
	return v
}

func (v *clientsView) refresh() {
	clients := v.user.ListClients()
	ids := make([]int, len(clients))
	rows := make([]table.Row, len(clients))
	for i, c := range clients {
		ids[i] = c.ID()
		rows[i] = table.Row{
			strconv.Itoa(c.ID()),
			v.grid.cell(clientColStudent, c.StudentName()),
			v.grid.cell(clientColParent, c.ParentName()),
			c.PhoneNumber(),
			v.grid.cell(clientColDescription, c.Description()),
		}
	}
	v.grid.setRows(ids, rows)
}

func (v *clientsView) Init() tea.Cmd { return nil }

func (v *clientsView) Typing() bool { return v.grid.mode == gridEditing }

func (v *clientsView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.grid.resize(msg.Width, msg.Height)
		return v, nil
	case tea.KeyMsg:
		switch v.grid.mode {
		case gridEditing:
			return v.updateEdit(msg)
		case gridConfirmDelete:
			return v.updateConfirm(msg)
		}
		return v.handleBrowseKeys(msg)
	}

	if v.grid.mode == gridEditing {
		return v, v.grid.updateInput(msg)
	}
	return v, nil
}

func (v *clientsView) handleBrowseKeys(msg tea.KeyMsg) (View, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Quit):
		return v, switchTo(ViewMenu)
	case key.Matches(msg, keys.Left):
		v.grid.moveColumn(-1)
	case key.Matches(msg, keys.Right):
		v.grid.moveColumn(1)
	case key.Matches(msg, keys.Add):
		return v, switchTo(ViewAddClient)
	case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
		return v.startEdit()
	case key.Matches(msg, keys.Delete):
		return v.startDelete()
	default:
		return v, v.grid.updateTable(msg)
	}
	return v, nil
}

func (v *clientsView) startEdit() (View, tea.Cmd) {
	id, ok := v.grid.selectedID()
	if !ok {
		return v, setStatus("No client selected.")
	}
	c, err := v.user.GetClientByID(id)
	if err != nil {
		return v, errStatus(err)
	}
	return v, v.grid.startEdit(clientCell(c, v.grid.col))
}

func clientCell(c *model.Client, col int) string {
	switch col {
	case clientColStudent:
		return c.StudentName()
	case clientColParent:
		return c.ParentName()
	case clientColPhone:
		return c.PhoneNumber()
	case clientColDescription:
		return c.Description()
	default:
		return strconv.Itoa(c.ID())
	}
}

func (v *clientsView) updateEdit(msg tea.KeyMsg) (View, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape):
		v.grid.stopEdit()
		return v, setStatus("Edit cancelled.")
	case key.Matches(msg, keys.Enter):
		value := v.grid.input.Value()
		v.grid.stopEdit()
		return v, v.commit(value)
	}
	return v, v.grid.updateInput(msg)
}

// commit writes value into the focused column through the client's
// setter. A rejected value leaves the client unchanged.
func (v *clientsView) commit(value string) tea.Cmd {
	id, ok := v.grid.selectedID()
	if !ok {
		return nil
	}
	c, err := v.user.GetClientByID(id)
	if err != nil {
		return errStatus(err)
	}

	switch v.grid.col {
	case clientColStudent:
		err = c.SetStudentName(value)
	case clientColParent:
		err = c.SetParentName(value)
	case clientColPhone:
		err = c.SetPhoneNumber(value)
	case clientColDescription:
		c.SetDescription(value)
	}
	if err != nil {
		logger.Debug("Client edit rejected", rejectFields(err,
			logger.F("id", id),
			logger.F("column", v.grid.columnTitle()))...)
		return errStatus(err)
	}

	v.refresh()
	logger.Info("Client updated", logger.F("id", id), logger.F("column", v.grid.columnTitle()))
	return setStatus("Client %d updated.", id)
}

func (v *clientsView) startDelete() (View, tea.Cmd) {
	if _, ok := v.grid.selectedID(); !ok {
		return v, setStatus("No client selected.")
	}
	if v.confirmDelete {
		v.grid.mode = gridConfirmDelete
		return v, nil
	}
	return v, v.remove()
}

func (v *clientsView) updateConfirm(msg tea.KeyMsg) (View, tea.Cmd) {
	v.grid.mode = gridBrowse
	if key.Matches(msg, keys.Confirm) {
		return v, v.remove()
	}
	return v, setStatus("Delete cancelled.")
}

func (v *clientsView) remove() tea.Cmd {
	id, ok := v.grid.selectedID()
	if !ok {
		return nil
	}
	if err := v.user.RemoveClient(id); err != nil {
		return errStatus(err)
	}
	v.refresh()
	logger.Info("Client removed", logger.F("id", id))
	return setStatus("Client %d removed. Remaining clients were renumbered.", id)
}

func (v *clientsView) View() string {
	extra := HelpStyle.Render(fmt.Sprintf("%d clients", v.user.Clients().Len()))
	return v.grid.render("Clients", extra)
}

func (v *clientsView) ShortHelp() []key.Binding {
	if v.grid.mode == gridEditing {
		return []key.Binding{keys.Enter, keys.Escape}
	}
	return []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right, keys.Edit, keys.Delete, keys.Add, keys.Escape}
}

func (v *clientsView) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down, keys.Left, keys.Right},
		{keys.Edit, keys.Delete, keys.Add},
		{keys.Escape, keys.Help},
	}
}
