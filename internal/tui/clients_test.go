package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientsView_Rows(t *testing.T) {
	v := newClientsView(sampleUser(), false)
	require.Len(t, v.grid.table.Rows(), 3)
	assert.Equal(t, []string{"1", "Pati", "Monika", "432789234", "2class"}, []string(v.grid.table.Rows()[0]))
	assert.Equal(t, "Student", v.grid.columnTitle())
}

func TestClientsView_ColumnNavigationSkipsID(t *testing.T) {
	v := newClientsView(sampleUser(), false)

	v.Update(press(tea.KeyLeft))
	assert.Equal(t, "Description", v.grid.columnTitle(), "wraps past the read-only id column")

	v.Update(press(tea.KeyRight))
	v.Update(press(tea.KeyRight))
	assert.Equal(t, "Parent", v.grid.columnTitle())
}

func TestClientsView_EditRejectedLeavesClientUnchanged(t *testing.T) {
	user := sampleUser()
	v := newClientsView(user, false)

	v.Update(press(tea.KeyRight))
	v.Update(press(tea.KeyRight))
	require.Equal(t, "Phone", v.grid.columnTitle())

	v.Update(runes("e"))
	require.True(t, v.Typing())
	assert.Equal(t, "432789234", v.grid.input.Value(), "editor starts from the current value")

	v.grid.input.SetValue("12")
	_, cmd := v.Update(press(tea.KeyEnter))
	status := statusOf(t, cmd)
	assert.True(t, status.isErr)
	assert.Equal(t, "Phone number must be 9 digits.", status.text)
	assert.False(t, v.Typing())

	c, err := user.GetClientByID(1)
	require.NoError(t, err)
	assert.Equal(t, "432789234", c.PhoneNumber())
}

func TestClientsView_EditCommits(t *testing.T) {
	user := sampleUser()
	v := newClientsView(user, false)

	v.Update(press(tea.KeyDown))
	v.Update(runes("e"))
	v.grid.input.SetValue("Bartosz")
	_, cmd := v.Update(press(tea.KeyEnter))
	status := statusOf(t, cmd)
	assert.False(t, status.isErr)

	c, err := user.GetClientByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Bartosz", c.StudentName())
	assert.Equal(t, "Bartosz", v.grid.table.Rows()[1][clientColStudent])
}

func TestClientsView_EditCancel(t *testing.T) {
	user := sampleUser()
	v := newClientsView(user, false)

	v.Update(runes("e"))
	v.grid.input.SetValue("lowercase")
	v.Update(press(tea.KeyEsc))

	c, _ := user.GetClientByID(1)
	assert.Equal(t, "Pati", c.StudentName())
	assert.False(t, v.Typing())
}

func TestClientsView_DeleteWithConfirmation(t *testing.T) {
	user := sampleUser()
	v := newClientsView(user, true)

	v.Update(runes("d"))
	assert.Equal(t, gridConfirmDelete, v.grid.mode)
	_, cmd := v.Update(runes("n"))
	assert.Equal(t, "Delete cancelled.", statusOf(t, cmd).text)
	assert.Equal(t, 3, user.Clients().Len())

	v.Update(runes("d"))
	_, cmd = v.Update(runes("y"))
	assert.False(t, statusOf(t, cmd).isErr)
	require.Equal(t, 2, user.Clients().Len())

	first, err := user.GetClientByID(1)
	require.NoError(t, err)
	assert.Equal(t, "Bartek", first.StudentName(), "ids are renumbered after removal")
	assert.Equal(t, []int{1, 2}, v.grid.ids)
}

func TestClientsView_DeleteEmpty(t *testing.T) {
	v := newClientsView(emptyUser(), false)
	_, cmd := v.Update(runes("d"))
	assert.Equal(t, "No client selected.", statusOf(t, cmd).text)
}

func TestClientsView_Navigation(t *testing.T) {
	v := newClientsView(sampleUser(), false)

	_, cmd := v.Update(runes("a"))
	id, ok := switchOf(cmd)
	require.True(t, ok)
	assert.Equal(t, ViewAddClient, id)

	_, cmd = v.Update(press(tea.KeyEsc))
	id, ok = switchOf(cmd)
	require.True(t, ok)
	assert.Equal(t, ViewMenu, id)
}
