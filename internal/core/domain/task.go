package domain

import (
	"strings"
	"time"
)

// Status is the closed set of task states the backend understands. The
// string values are the exact wire labels; the backend speaks Spanish.
type Status string

const (
	StatusPending    Status = "Pendiente"
	StatusInProgress Status = "En Progreso"
	StatusCompleted  Status = "Completada"
)

// DateLayout is the wire format for due dates: a calendar date with no
// time component.
const DateLayout = "2006-01-02"

// ParseStatus validates a raw wire value against the closed enumeration.
func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusInProgress, StatusCompleted:
		return Status(value), nil
	}
	return "", ErrUnknownStatus
}

// Task is a single task record. ID is nil until the backend has persisted
// the task. OwnerID is stamped from the session on creation and is never
// user-editable.
type Task struct {
	ID          *int64
	Title       string
	Description string
	Status      Status
	DueDate     *time.Time
	OwnerID     int64
}

// Persisted reports whether the backend has assigned an id to this task.
func (t Task) Persisted() bool {
	return t.ID != nil
}

// ValidateDraft checks the client-side rules a task must satisfy before a
// create is allowed to reach the network.
func (t Task) ValidateDraft() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrTitleRequired
	}
	if _, err := ParseStatus(string(t.Status)); err != nil {
		return err
	}
	return nil
}

// TaskFilter narrows a list request. Zero values mean "no constraint";
// filtering itself is delegated entirely to the backend.
type TaskFilter struct {
	Text    string
	Status  Status
	DueDate *time.Time
}
