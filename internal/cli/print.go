package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/existflow/tutordesk/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#333333"))
)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
}

// flatten keeps multi-line descriptions on one table row
func flatten(s string, max int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) > max {
		return string(r[:max-3]) + "..."
	}
	return s
}

func renderClients(clients []*model.Client) string {
	t := newTable("ID", "Student", "Parent", "Phone", "Description")
	for _, c := range clients {
		t.Row(strconv.Itoa(c.ID()), c.StudentName(), c.ParentName(), c.PhoneNumber(), flatten(c.Description(), 40))
	}
	return t.Render()
}

func renderTasks(user *model.User, tasks []*model.Task) string {
	now := user.Now()
	t := newTable("ID", "Subject", "Client", "Date", "Time", "Status", "Description")
	for _, task := range tasks {
		t.Row(
			strconv.Itoa(task.ID()),
			task.Subject(),
			clientLabel(user, task.ClientID()),
			task.DateS(),
			task.TimeS(),
			task.StatusAt(now).String(),
			flatten(task.Description(), 40),
		)
	}
	return t.Render()
}

func clientLabel(user *model.User, id int) string {
	c, err := user.GetClientByID(id)
	if err != nil {
		return fmt.Sprintf("%d (missing)", id)
	}
	return c.String()
}

func printClients(w io.Writer, user *model.User) error {
	clients := user.ListClients()
	if len(clients) == 0 {
		_, err := fmt.Fprintln(w, "No clients. Add one with: tutordesk client add --student Ala --parent Maria")
		return err
	}
	_, err := fmt.Fprintf(w, "\n👤 Clients (%d)\n%s\n", len(clients), renderClients(clients))
	return err
}

func printTasks(w io.Writer, user *model.User, title string, tasks []*model.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintf(w, "No tasks found (%s).\n", title)
		return err
	}
	_, err := fmt.Fprintf(w, "\n📚 %s (%d)\n%s\n", title, len(tasks), renderTasks(user, tasks))
	return err
}

// printOverview writes both tables and the per-status counts
func printOverview(w io.Writer, user *model.User) error {
	if err := printClients(w, user); err != nil {
		return err
	}
	if err := printTasks(w, user, "All tasks", user.ListTasks()); err != nil {
		return err
	}

	counts := user.Tasks().CountByStatus()
	parts := make([]string, 0, len(model.AllStatuses))
	for _, s := range model.AllStatuses {
		parts = append(parts, fmt.Sprintf("%s: %d", s.Label(), counts[s]))
	}
	_, err := fmt.Fprintln(w, strings.Join(parts, "  "))
	return err
}
