// Package entities contains core business entities.
package entities

import "strings"

// TaskStatus enumerates task lifecycle states. The order is for display
// only and carries no comparison semantics.
type TaskStatus string

const (
	// StatusNotStarted marks a task that has not begun.
	StatusNotStarted TaskStatus = "NotStarted"
	// StatusInProgress marks a task being worked on.
	StatusInProgress TaskStatus = "InProgress"
	// StatusDone marks a finished task.
	StatusDone TaskStatus = "Done"
)

// ParseTaskStatus resolves a status name case-insensitively.
func ParseTaskStatus(s string) (TaskStatus, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "notstarted":
		return StatusNotStarted, true
	case "inprogress":
		return StatusInProgress, true
	case "done":
		return StatusDone, true
	default:
		return "", false
	}
}

// Task is a domain model of a unit of project work. AssignedUserID is a
// non-owning reference; it may be empty.
type Task struct {
	ID             string
	Name           string
	Status         TaskStatus
	AssignedUserID string
}

// Completed reports whether the task reached its terminal status.
func (t Task) Completed() bool {
	return t.Status == StatusDone
}
