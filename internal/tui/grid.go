package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// gridMode is what a table view is doing with keystrokes
type gridMode int

const (
	gridBrowse gridMode = iota
	gridEditing
	gridConfirmDelete
)

type gridColumn struct {
	title    string
	width    int
	editable bool
}

// grid is a record table with a focused column that can be edited in
// place. Rows are keyed by record id, not by row index.
type grid struct {
	table table.Model
	cols  []gridColumn
	col   int
	ids   []int
	mode  gridMode
	input textinput.Model
}

func newGrid(cols []gridColumn) grid {
	tcols := make([]table.Column, len(cols))
	first := -1
	for i, c := range cols {
		tcols[i] = table.Column{Title: c.title, Width: c.width}
		if c.editable && first < 0 {
			first = i
		}
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40
	ti.Prompt = "› "

	return grid{
		table: table.New(
			table.WithColumns(tcols),
			table.WithFocused(true),
			table.WithHeight(10),
			table.WithKeyMap(tableKeys()),
			table.WithStyles(tableStyles()),
		),
		cols:  cols,
		col:   first,
		input: ti,
	}
}

// setRows replaces the table contents, keeping the cursor in range
func (g *grid) setRows(ids []int, rows []table.Row) {
	g.ids = ids
	g.table.SetRows(rows)
	if c := g.table.Cursor(); c >= len(rows) {
		g.table.SetCursor(len(rows) - 1)
	} else if c < 0 && len(rows) > 0 {
		g.table.SetCursor(0)
	}
}

// selectedID returns the record id under the cursor
func (g *grid) selectedID() (int, bool) {
	c := g.table.Cursor()
	if c < 0 || c >= len(g.ids) {
		return 0, false
	}
	return g.ids[c], true
}

// moveColumn shifts the focused column by delta, skipping read-only ones
func (g *grid) moveColumn(delta int) {
	n := len(g.cols)
	for i, next := 0, g.col; i < n; i++ {
		next = wrapIndex(next+delta, n)
		if g.cols[next].editable {
			g.col = next
			return
		}
	}
}

func (g *grid) columnTitle() string {
	if g.col < 0 {
		return ""
	}
	return g.cols[g.col].title
}

// cell fits free text into column col's width on a single line
func (g *grid) cell(col int, s string) string {
	return truncate(oneLine(s), g.cols[col].width)
}

func (g *grid) startEdit(current string) tea.Cmd {
	g.mode = gridEditing
	g.input.SetValue(current)
	g.input.Placeholder = g.columnTitle()
	g.input.CursorEnd()
	return g.input.Focus()
}

func (g *grid) stopEdit() {
	g.mode = gridBrowse
	g.input.Blur()
	g.input.SetValue("")
}

func (g *grid) updateInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.input, cmd = g.input.Update(msg)
	return cmd
}

func (g *grid) updateTable(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	g.table, cmd = g.table.Update(msg)
	return cmd
}

func (g *grid) resize(width, height int) {
	g.table.SetWidth(width)
	// title, column line, footer line and table header
	g.table.SetHeight(max(height-6, 3))
}

// render draws the title, the table and a footer that depends on mode
func (g *grid) render(title string, extra string) string {
	s := TitleStyle.Render(title)
	if extra != "" {
		s += "  " + extra
	}
	s += "\n" + HelpStyle.Render("column: ") + ColumnStyle.Render(g.columnTitle()) + "\n"
	s += g.table.View() + "\n"

	switch g.mode {
	case gridEditing:
		id, _ := g.selectedID()
		s += lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Edit %s of #%d", g.columnTitle(), id)) +
			"  " + g.input.View() + "  " + HelpStyle.Render("Enter:save  Esc:cancel")
	case gridConfirmDelete:
		id, _ := g.selectedID()
		s += StatusErrorStyle.Render(fmt.Sprintf("Delete #%d? ", id)) + HelpStyle.Render("y:confirm  any other key:cancel")
	}
	return BodyStyle.Render(s)
}
