package tui

import (
	"github.com/existflow/tutordesk/internal/config"
	"github.com/existflow/tutordesk/internal/model"
)

// ViewID names a screen
type ViewID int

const (
	ViewMenu ViewID = iota
	ViewClients
	ViewTasks
	ViewAddClient
	ViewAddTask
)

func (id ViewID) String() string {
	switch id {
	case ViewMenu:
		return "menu"
	case ViewClients:
		return "clients"
	case ViewTasks:
		return "tasks"
	case ViewAddClient:
		return "add_client"
	case ViewAddTask:
		return "add_task"
	default:
		return "unknown"
	}
}

// Factory maps each view id to a constructor bound to one user's data
type Factory map[ViewID]func() View

// NewFactory registers every view against user
func NewFactory(user *model.User, cfg *config.Config) Factory {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return Factory{
		ViewMenu:      func() View { return newMenuView() },
		ViewClients:   func() View { return newClientsView(user, cfg.ConfirmDelete) },
		ViewTasks:     func() View { return newTasksView(user, cfg.ConfirmDelete) },
		ViewAddClient: func() View { return newClientForm(user) },
		ViewAddTask:   func() View { return newTaskForm(user) },
	}
}

// Build constructs the view for id, falling back to the menu for ids
// nothing is registered under.
func (f Factory) Build(id ViewID) View {
	if build, ok := f[id]; ok {
		return build()
	}
	return f[ViewMenu]()
}
