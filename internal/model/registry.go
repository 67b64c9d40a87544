package model

import (
	"slices"
	"time"

	apperrors "github.com/existflow/tutordesk/internal/errors"
)

// record is a registry element whose id the registry owns
type record interface {
	ID() int
	setID(id int)
}

// Registry is an ordered collection whose ids are always dense: after any
// mutation every element's id equals its 1-based position.
type Registry[T record] struct {
	entity apperrors.Entity
	items  []T
}

// Add appends item and assigns it the new size as id. item must not be nil.
func (r *Registry[T]) Add(item T) int {
	r.items = append(r.items, item)
	id := len(r.items)
	item.setID(id)
	return id
}

// RemoveByID removes the element with the given id and shifts the ids of
// every later element down by one.
func (r *Registry[T]) RemoveByID(id int) error {
	if id < 1 || id > len(r.items) {
		return apperrors.NewNotFoundError(r.entity, id)
	}
	r.items = slices.Delete(r.items, id-1, id)
	for i := id - 1; i < len(r.items); i++ {
		r.items[i].setID(i + 1)
	}
	return nil
}

// GetByID returns the element with the given 1-based id
func (r *Registry[T]) GetByID(id int) (T, error) {
	if id < 1 || id > len(r.items) {
		var zero T
		return zero, apperrors.NewNotFoundError(r.entity, id)
	}
	return r.items[id-1], nil
}

// List returns the elements in registry order. The slice is a copy; the
// elements are shared.
func (r *Registry[T]) List() []T {
	return slices.Clone(r.items)
}

func (r *Registry[T]) Len() int {
	return len(r.items)
}

// ClientRegistry holds the user's clients
type ClientRegistry struct {
	Registry[*Client]
}

func newClientRegistry() *ClientRegistry {
	return &ClientRegistry{Registry[*Client]{entity: apperrors.EntityClient}}
}

// TaskRegistry holds the user's tasks
type TaskRegistry struct {
	Registry[*Task]
	now func() time.Time
}

func newTaskRegistry(now func() time.Time) *TaskRegistry {
	return &TaskRegistry{
		Registry: Registry[*Task]{entity: apperrors.EntityTask},
		now:      now,
	}
}

// FilterByStatus returns the tasks currently in the given bucket, in
// registry order.
func (r *TaskRegistry) FilterByStatus(status TaskStatus) []*Task {
	now := r.now()
	var out []*Task
	for _, t := range r.items {
		if t.StatusAt(now) == status {
			out = append(out, t)
		}
	}
	return out
}

// CountByStatus returns the number of tasks in each bucket
func (r *TaskRegistry) CountByStatus() map[TaskStatus]int {
	now := r.now()
	counts := make(map[TaskStatus]int, len(AllStatuses))
	for _, t := range r.items {
		counts[t.StatusAt(now)]++
	}
	return counts
}
