package model

import "time"

// User is the aggregate root owning one client registry and one task
// registry. Deleting a client does not touch tasks that reference it.
//
// A User is not safe for concurrent use; it is owned by a single caller.
type User struct {
	clients *ClientRegistry
	tasks   *TaskRegistry

	now  func() time.Time
	seed bool
}

// Option configures a User
type Option func(*User)

// WithClock sets the source of "now" used for task status. Defaults to
// time.Now.
func WithClock(now func() time.Time) Option {
	return func(u *User) {
		if now != nil {
			u.now = now
		}
	}
}

// WithSampleData seeds three clients and one task
func WithSampleData() Option {
	return func(u *User) { u.seed = true }
}

// NewUser creates an empty user
func NewUser(opts ...Option) *User {
	u := &User{now: time.Now}
	for _, opt := range opts {
		opt(u)
	}
	u.clients = newClientRegistry()
	u.tasks = newTaskRegistry(func() time.Time { return u.now() })
	if u.seed {
		u.seedSampleData()
	}
	return u
}

func (u *User) seedSampleData() {
	u.AddClient(mustClient(NewClient("Pati", "Monika", "432789234", "2class")))
	u.AddClient(mustClient(NewClient("Bartek", "Klaudia", "506923876", "Good")))
	u.AddClient(mustClient(NewClient("Michal", "Krzysztof", "123456780", "Bad")))

	u.AddTask(mustTask(NewTask("Matematyka", "nowy lol", 2, "2024-12-23", "12:30")))
}

func mustClient(c *Client, err error) *Client {
	if err != nil {
		panic(err)
	}
	return c
}

func mustTask(t *Task, err error) *Task {
	if err != nil {
		panic(err)
	}
	return t
}

// Now returns the aggregate's current time
func (u *User) Now() time.Time { return u.now() }

func (u *User) Clients() *ClientRegistry { return u.clients }
func (u *User) Tasks() *TaskRegistry     { return u.tasks }

// AddClient appends a client and returns its id
func (u *User) AddClient(c *Client) int {
	return u.clients.Add(c)
}

// RemoveClient removes a client by id and renumbers the clients after it
func (u *User) RemoveClient(id int) error {
	return u.clients.RemoveByID(id)
}

// GetClientByID returns the client with the given 1-based id
func (u *User) GetClientByID(id int) (*Client, error) {
	return u.clients.GetByID(id)
}

// ListClients returns clients in registry order
func (u *User) ListClients() []*Client {
	return u.clients.List()
}

// AddTask appends a task and returns its id
func (u *User) AddTask(t *Task) int {
	return u.tasks.Add(t)
}

// RemoveTask removes a task by id and renumbers the tasks after it
func (u *User) RemoveTask(id int) error {
	return u.tasks.RemoveByID(id)
}

// GetTaskByID returns the task with the given 1-based id
func (u *User) GetTaskByID(id int) (*Task, error) {
	return u.tasks.GetByID(id)
}

// ListTasks returns tasks in registry order
func (u *User) ListTasks() []*Task {
	return u.tasks.List()
}

// FilterTasksByStatus returns the tasks in the given bucket without
// modifying the registry
func (u *User) FilterTasksByStatus(status TaskStatus) []*Task {
	return u.tasks.FilterByStatus(status)
}
