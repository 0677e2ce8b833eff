package memory

import (
	"context"
	"fmt"

	"github.com/db-keli/task-management/internal/entities"
)

// AddTask appends a task to the project's ordered task list. A missing
// project or empty input yields false without an error; the service
// layer decides whether that deserves one.
func (m *Memory) AddTask(_ context.Context, projectID string, task *entities.Task) (bool, error) {
	if projectID == "" || task == nil {
		return false, nil
	}
	if !m.projectExists(projectID) {
		return false, nil
	}
	m.projectTasks[projectID] = append(m.projectTasks[projectID], task)
	return true, nil
}

// GetTasksForProject returns the ordered task list. The slice is a
// copy, but the tasks themselves are shared so status updates through
// the service layer stay visible here.
func (m *Memory) GetTasksForProject(_ context.Context, projectID string) ([]*entities.Task, error) {
	if projectID == "" {
		return []*entities.Task{}, nil
	}
	tasks := m.projectTasks[projectID]
	out := make([]*entities.Task, len(tasks))
	copy(out, tasks)
	return out, nil
}

// RemoveTaskFromProject distinguishes its failure causes: empty inputs,
// a missing project, a project with zero tasks, and a task ID absent
// from the list each carry their own message.
func (m *Memory) RemoveTaskFromProject(_ context.Context, projectID, taskID string) error {
	if projectID == "" || taskID == "" {
		return fmt.Errorf("%w: project ID and task ID cannot be null", entities.ErrTaskNotFound)
	}
	if !m.projectExists(projectID) {
		return fmt.Errorf("%w: project not found with ID: %s", entities.ErrTaskNotFound, projectID)
	}

	tasks := m.projectTasks[projectID]
	if len(tasks) == 0 {
		return fmt.Errorf("%w: No tasks found for project: %s", entities.ErrTaskNotFound, projectID)
	}

	kept := tasks[:0]
	removed := false
	for _, t := range tasks {
		if t != nil && t.ID == taskID {
			removed = true
			continue
		}
		kept = append(kept, t)
	}
	if !removed {
		return fmt.Errorf("%w: task not found with ID: %s in project: %s", entities.ErrTaskNotFound, taskID, projectID)
	}
	m.projectTasks[projectID] = kept
	return nil
}

// AssignUserToProject adds the user to the project's ordered assignment
// set. Repeat assignments and missing projects report false.
func (m *Memory) AssignUserToProject(_ context.Context, projectID, userID string) (bool, error) {
	if projectID == "" || userID == "" {
		return false, nil
	}
	if !m.projectExists(projectID) {
		return false, nil
	}
	for _, id := range m.projectAssignees[projectID] {
		if id == userID {
			return false, nil
		}
	}
	m.projectAssignees[projectID] = append(m.projectAssignees[projectID], userID)
	return true, nil
}

// RemoveUserFromProject reports whether a removal occurred.
func (m *Memory) RemoveUserFromProject(_ context.Context, projectID, userID string) (bool, error) {
	if projectID == "" || userID == "" {
		return false, nil
	}
	assigned := m.projectAssignees[projectID]
	for i, id := range assigned {
		if id == userID {
			m.projectAssignees[projectID] = append(assigned[:i], assigned[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// GetAssignedUserIDsForProject returns a copy of the ordered set.
func (m *Memory) GetAssignedUserIDsForProject(_ context.Context, projectID string) ([]string, error) {
	if projectID == "" {
		return []string{}, nil
	}
	assigned := m.projectAssignees[projectID]
	out := make([]string, len(assigned))
	copy(out, assigned)
	return out, nil
}
