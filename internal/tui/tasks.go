package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/existflow/tutordesk/internal/logger"
	"github.com/existflow/tutordesk/internal/model"
	"github.com/existflow/tutordesk/internal/validation"
)

// Task table columns
const (
	taskColID = iota
	taskColSubject
	taskColClient
	taskColDate
	taskColTime
	taskColStatus
	taskColDescription
)

type tasksView struct {
	user          *model.User
	confirmDelete bool
	grid          grid
	filter        *model.TaskStatus
}

func newTasksView(user *model.User, confirmDelete bool) *tasksView {
	v := &tasksView{
		user:          user,
		confirmDelete: confirmDelete,
		grid: newGrid([]gridColumn{
			{title: "ID", width: 4},
			{title: "Subject", width: 16, editable: true},
			{title: "Client", width: 14, editable: true},
			{title: "Date", width: 11, editable: true},
			{title: "Time", width: 6, editable: true},
			{title: "Status", width: 14},
			{title: "Description", width: 28, editable: true},
		}),
	}
	v.refresh()
	return v
}

// visible returns the tasks passing the current filter
func (v *tasksView) visible() []*model.Task {
	if v.filter == nil {
		return v.user.ListTasks()
	}
	return v.user.FilterTasksByStatus(*v.filter)
}

func (v *tasksView) refresh() {
	now := v.user.Now()
	tasks := v.visible()
	ids := make([]int, len(tasks))
	rows := make([]table.Row, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID()
		rows[i] = table.Row{
			strconv.Itoa(t.ID()),
			v.grid.cell(taskColSubject, t.Subject()),
			v.grid.cell(taskColClient, v.clientLabel(t.ClientID())),
			t.DateS(),
			t.TimeS(),
			t.StatusAt(now).Label(),
			v.grid.cell(taskColDescription, t.Description()),
		}
	}
	v.grid.setRows(ids, rows)
}

// clientLabel names the client a task refers to. Ids shift when clients
// are removed, so a task may point at a client that no longer exists.
func (v *tasksView) clientLabel(id int) string {
	c, err := v.user.GetClientByID(id)
	if err != nil {
		return fmt.Sprintf("%d (missing)", id)
	}
	return c.String()
}

func (v *tasksView) setFilter(status *model.TaskStatus) tea.Cmd {
	v.filter = status
	v.refresh()
	if status == nil {
		return setStatus("Showing all tasks.")
	}
	return setStatus("Showing %s tasks.", strings.ToLower(status.Label()))
}

func (v *tasksView) Init() tea.Cmd { return nil }

func (v *tasksView) Typing() bool { return v.grid.mode == gridEditing }

func (v *tasksView) Update(msg tea.Msg) (View, tea.Cmd) {
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

func (v *tasksView) handleBrowseKeys(msg tea.KeyMsg) (View, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Escape), key.Matches(msg, keys.Quit):
		return v, switchTo(ViewMenu)
	case key.Matches(msg, keys.Left):
		v.grid.moveColumn(-1)
	case key.Matches(msg, keys.Right):
		v.grid.moveColumn(1)
	case key.Matches(msg, keys.Add):
		return v, switchTo(ViewAddTask)
	case key.Matches(msg, keys.Edit), key.Matches(msg, keys.Enter):
		return v.startEdit()
	case key.Matches(msg, keys.Delete):
		return v.startDelete()
	case key.Matches(msg, keys.FilterAll):
		return v, v.setFilter(nil)
	case key.Matches(msg, keys.FilterOne):
		s := model.DueSoon
		return v, v.setFilter(&s)
	case key.Matches(msg, keys.FilterTwo):
		s := model.DueThisWeek
		return v, v.setFilter(&s)
	case key.Matches(msg, keys.FilterThr):
		s := model.LongTerm
		return v, v.setFilter(&s)
	default:
		return v, v.grid.updateTable(msg)
	}
	return v, nil
}

func (v *tasksView) startEdit() (View, tea.Cmd) {
	id, ok := v.grid.selectedID()
	if !ok {
		return v, setStatus("No task selected.")
	}
	t, err := v.user.GetTaskByID(id)
	if err != nil {
		return v, errStatus(err)
	}
	return v, v.grid.startEdit(taskCell(t, v.grid.col))
}

func taskCell(t *model.Task, col int) string {
	switch col {
	case taskColSubject:
		return t.Subject()
	case taskColClient:
		return strconv.Itoa(t.ClientID())
	case taskColDate:
		return t.DateS()
	case taskColTime:
		return t.TimeS()
	case taskColDescription:
		return t.Description()
	default:
		return strconv.Itoa(t.ID())
	}
}

func (v *tasksView) updateEdit(msg tea.KeyMsg) (View, tea.Cmd) {
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

// commit writes value into the focused column of the selected task. A
// client id must name an existing client; the task itself accepts any.
func (v *tasksView) commit(value string) tea.Cmd {
	id, ok := v.grid.selectedID()
	if !ok {
		return nil
	}
	t, err := v.user.GetTaskByID(id)
	if err != nil {
		return errStatus(err)
	}

	switch v.grid.col {
	case taskColSubject:
		err = t.SetSubject(value)
	case taskColClient:
		err = v.setClient(t, value)
	case taskColDate:
		err = t.SetDateS(value)
	case taskColTime:
		err = t.SetTimeS(value)
	case taskColDescription:
		t.SetDescription(value)
	}
	if err != nil {
		logger.Debug("Task edit rejected", rejectFields(err,
			logger.F("id", id),
			logger.F("column", v.grid.columnTitle()))...)
		return errStatus(err)
	}

	v.refresh()
	logger.Info("Task updated", logger.F("id", id), logger.F("column", v.grid.columnTitle()))
	return setStatus("Task %d updated.", id)
}

func (v *tasksView) setClient(t *model.Task, value string) error {
	clientID, err := validation.ClientID(value)
	if err != nil {
		return err
	}
	if _, err := v.user.GetClientByID(clientID); err != nil {
		return err
	}
	t.SetClientID(clientID)
	return nil
}

func (v *tasksView) startDelete() (View, tea.Cmd) {
	if _, ok := v.grid.selectedID(); !ok {
		return v, setStatus("No task selected.")
	}
	if v.confirmDelete {
		v.grid.mode = gridConfirmDelete
		return v, nil
	}
	return v, v.remove()
}

func (v *tasksView) updateConfirm(msg tea.KeyMsg) (View, tea.Cmd) {
	v.grid.mode = gridBrowse
	if key.Matches(msg, keys.Confirm) {
		return v, v.remove()
	}
	return v, setStatus("Delete cancelled.")
}

// remove deletes the selected task by its own id, which differs from the
// row index whenever a filter is active.
func (v *tasksView) remove() tea.Cmd {
	id, ok := v.grid.selectedID()
	if !ok {
		return nil
	}
	if err := v.user.RemoveTask(id); err != nil {
		return errStatus(err)
	}
	v.refresh()
	logger.Info("Task removed", logger.F("id", id))
	return setStatus("Task %d removed.", id)
}

func (v *tasksView) View() string {
	title := "Tasks"
	if v.filter != nil {
		title += " · " + FormatStatus(*v.filter)
	}
	extra := HelpStyle.Render(fmt.Sprintf("%d shown", len(v.grid.ids)))
	return v.grid.render(title, extra)
}

func (v *tasksView) ShortHelp() []key.Binding {
	if v.grid.mode == gridEditing {
		return []key.Binding{keys.Enter, keys.Escape}
	}
	return []key.Binding{keys.Up, keys.Down, keys.Left, keys.Right, keys.Edit, keys.Delete, keys.Add, keys.FilterAll, keys.Escape}
}

func (v *tasksView) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{keys.Up, keys.Down, keys.Left, keys.Right},
		{keys.Edit, keys.Delete, keys.Add},
		{keys.FilterOne, keys.FilterTwo, keys.FilterThr, keys.FilterAll},
		{keys.Escape, keys.Help},
	}
}
