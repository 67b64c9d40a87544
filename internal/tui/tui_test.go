package tui

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/existflow/tutordesk/internal/config"
	"github.com/existflow/tutordesk/internal/logger"
	"github.com/existflow/tutordesk/internal/model"
	"github.com/existflow/tutordesk/internal/validation"
)

var fixedNow = time.Date(2024, 12, 21, 10, 0, 0, 0, time.UTC)

func sampleUser() *model.User {
	return model.NewUser(
		model.WithClock(func() time.Time { return fixedNow }),
		model.WithSampleData(),
	)
}

func emptyUser() *model.User {
	return model.NewUser(model.WithClock(func() time.Time { return fixedNow }))
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func press(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func typeText(v View, s string) View {
	for _, r := range s {
		v, _ = v.Update(runes(string(r)))
	}
	return v
}

// collect runs cmd and flattens batches. Only use it on commands that do
// not sleep (status and navigation commands).
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func statusOf(t *testing.T, cmd tea.Cmd) statusMsg {
	t.Helper()
	for _, m := range collect(cmd) {
		if s, ok := m.(statusMsg); ok {
			return s
		}
	}
	t.Fatalf("no status message emitted")
	return statusMsg{}
}

func switchOf(cmd tea.Cmd) (ViewID, bool) {
	for _, m := range collect(cmd) {
		if s, ok := m.(switchViewMsg); ok {
			return s.id, true
		}
	}
	return 0, false
}

func TestFactory_BuildsEveryView(t *testing.T) {
	f := NewFactory(sampleUser(), config.DefaultConfig())
	assert.IsType(t, &menuView{}, f.Build(ViewMenu))
	assert.IsType(t, &clientsView{}, f.Build(ViewClients))
	assert.IsType(t, &tasksView{}, f.Build(ViewTasks))
	assert.IsType(t, &clientForm{}, f.Build(ViewAddClient))
	assert.IsType(t, &taskForm{}, f.Build(ViewAddTask))
	assert.IsType(t, &menuView{}, f.Build(ViewID(42)))
}

func TestFactory_ViewsShareTheUser(t *testing.T) {
	user := emptyUser()
	f := NewFactory(user, nil)

	form := f.Build(ViewAddClient)
	form = typeText(form, "Ala")
	form, _ = form.Update(press(tea.KeyTab))
	form = typeText(form, "Ewa")
	_, cmd := form.Update(press(tea.KeyEnter))
	collect(cmd)

	clients := f.Build(ViewClients).(*clientsView)
	assert.Equal(t, []int{1}, clients.grid.ids)
}

func TestMenu_Navigation(t *testing.T) {
	var v View = newMenuView()

	v, _ = v.Update(press(tea.KeyDown))
	_, cmd := v.Update(press(tea.KeyEnter))
	id, ok := switchOf(cmd)
	require.True(t, ok)
	assert.Equal(t, ViewTasks, id)

	v, _ = v.Update(press(tea.KeyUp))
	v, _ = v.Update(press(tea.KeyUp))
	_, cmd = v.Update(press(tea.KeyEnter))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd(), "wrapping up from the top lands on Quit")

	_, cmd = v.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_SwitchAndStatus(t *testing.T) {
	m := NewModel(sampleUser(), config.DefaultConfig())
	assert.Equal(t, ViewMenu, m.CurrentView())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	next, _ = next.Update(switchViewMsg{id: ViewClients})
	m = next.(Model)
	assert.Equal(t, ViewClients, m.CurrentView())

	next, _ = m.Update(statusMsg{text: "Client 1 updated.", isErr: false})
	m = next.(Model)
	assert.Contains(t, m.View(), "Client 1 updated.")

	next, _ = m.Update(runes("?"))
	assert.True(t, next.(Model).help.ShowAll)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_ViewShowsHeader(t *testing.T) {
	m := NewModel(sampleUser(), nil)
	assert.Equal(t, "Loading...", m.View())

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	out := next.(Model).View()
	assert.Contains(t, out, "TutorDesk")
	assert.Contains(t, out, "2024-12-21")
	assert.Contains(t, out, "Clients")
}

func TestRejectFields(t *testing.T) {
	err := validation.PhoneNumber("12345")
	require.Error(t, err)

	fields := rejectFields(err, logger.F("id", 2))
	require.Len(t, fields, 3)
	assert.Equal(t, logger.F("id", 2), fields[0])
	assert.Equal(t, "error", fields[1].Key)
	assert.Equal(t, logger.F("rule", "invalid_phone_number"), fields[2])

	plain := rejectFields(errors.New("boom"))
	assert.Equal(t, []logger.Field{logger.F("error", "boom")}, plain)
}
