package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/existflow/tutordesk/internal/validation"
)

// TaskStatus is the urgency bucket of a task, derived from its date
type TaskStatus int

const (
	DueSoon TaskStatus = iota
	DueThisWeek
	LongTerm
)

// Day thresholds of the status buckets, counted in calendar days from today
const (
	dueSoonDays     = 3
	dueThisWeekDays = 7
)

// AllStatuses lists the buckets in order of urgency
var AllStatuses = []TaskStatus{DueSoon, DueThisWeek, LongTerm}

func (s TaskStatus) String() string {
	switch s {
	case DueSoon:
		return "DUE_SOON"
	case DueThisWeek:
		return "DUE_THIS_WEEK"
	case LongTerm:
		return "LONG_TERM"
	default:
		return "UNKNOWN"
	}
}

// Label returns a human readable name for the status
func (s TaskStatus) Label() string {
	switch s {
	case DueSoon:
		return "Due soon"
	case DueThisWeek:
		return "Due this week"
	case LongTerm:
		return "Long term"
	default:
		return "Unknown"
	}
}

// ParseTaskStatus accepts DUE_SOON, due-soon, due_soon and the short forms
// soon, week and long.
func ParseTaskStatus(s string) (TaskStatus, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.ReplaceAll(norm, "-", "_")
	switch norm {
	case "due_soon", "soon":
		return DueSoon, nil
	case "due_this_week", "week", "this_week":
		return DueThisWeek, nil
	case "long_term", "long":
		return LongTerm, nil
	}
	return 0, fmt.Errorf("unknown task status %q (want due-soon, due-this-week or long-term)", s)
}

// StatusForDays buckets a signed calendar-day distance between today and a
// due date. Overdue dates (negative distance) count as due soon.
func StatusForDays(days int) TaskStatus {
	switch {
	case days <= dueSoonDays:
		return DueSoon
	case days <= dueThisWeekDays:
		return DueThisWeek
	default:
		return LongTerm
	}
}

// DaysUntil returns the number of calendar days from now's date to date.
// Only the year, month and day of each value are used.
func DaysUntil(now, date time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	due := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	return int((due.Unix() - today.Unix()) / 86400)
}

// Task is a piece of work scheduled for a client
type Task struct {
	id          int
	subject     string
	description string
	clientID    int
	date        time.Time
	hour        int
	minute      int
}

// NewTask creates a validated task from the external date (YYYY-MM-DD) and
// time (HH:mm) representations. The client id is not checked against any
// registry.
func NewTask(subject, description string, clientID int, date, tod string) (*Task, error) {
	t := &Task{description: description, clientID: clientID}
	if err := t.SetSubject(subject); err != nil {
		return nil, err
	}
	if err := t.SetDateS(date); err != nil {
		return nil, err
	}
	if err := t.SetTimeS(tod); err != nil {
		return nil, err
	}
	return t, nil
}

// ID returns the task's current 1-based position in its registry, or 0 when
// the task has not been added to one.
func (t *Task) ID() int { return t.id }

func (t *Task) setID(id int) { t.id = id }

func (t *Task) Subject() string     { return t.subject }
func (t *Task) Description() string { return t.description }
func (t *Task) ClientID() int       { return t.clientID }

// Date returns the calendar date at midnight UTC
func (t *Task) Date() time.Time { return t.date }

// DateS returns the date as YYYY-MM-DD
func (t *Task) DateS() string { return t.date.Format(validation.DateLayout) }

// TimeS returns the time of day as HH:mm
func (t *Task) TimeS() string { return fmt.Sprintf("%02d:%02d", t.hour, t.minute) }

// Due combines the date and time of day in the given location
func (t *Task) Due(loc *time.Location) time.Time {
	return time.Date(t.date.Year(), t.date.Month(), t.date.Day(), t.hour, t.minute, 0, 0, loc)
}

// SetSubject rejects empty and all-whitespace subjects
func (t *Task) SetSubject(subject string) error {
	if err := validation.Subject(subject); err != nil {
		return err
	}
	t.subject = subject
	return nil
}

func (t *Task) SetDescription(description string) {
	t.description = description
}

func (t *Task) SetClientID(id int) {
	t.clientID = id
}

// SetDate keeps only the calendar date of d
func (t *Task) SetDate(d time.Time) {
	t.date = time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}

// SetDateS parses and assigns a YYYY-MM-DD date
func (t *Task) SetDateS(s string) error {
	d, err := validation.ParseDate(s)
	if err != nil {
		return err
	}
	t.SetDate(d)
	return nil
}

// SetTimeS parses and assigns an HH:mm time of day
func (t *Task) SetTimeS(s string) error {
	tod, err := validation.ParseTime(s)
	if err != nil {
		return err
	}
	t.hour, t.minute = tod.Hour(), tod.Minute()
	return nil
}

// Status derives the urgency bucket from the task's date and today's date.
// It is recomputed on every call.
func (t *Task) Status() TaskStatus {
	return t.StatusAt(time.Now())
}

// StatusAt derives the urgency bucket relative to now
func (t *Task) StatusAt(now time.Time) TaskStatus {
	return StatusForDays(DaysUntil(now, t.date))
}
