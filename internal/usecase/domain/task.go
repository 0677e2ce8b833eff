// Package domain contains application usecases orchestrating domain logic by task.
package domain

import (
	"context"
	"fmt"

	"github.com/db-keli/task-management/internal/entities"
	"github.com/db-keli/task-management/internal/identity"
)

// CreateTask builds a task with a freshly issued ID. Tasks live in the
// project task index, attached via AddTaskToProject.
func (u *Usecase) CreateTask(ctx context.Context, name string, status entities.TaskStatus) (*entities.Task, error) {
	id, err := u.issuer.NextID(identity.KindTask)
	if err != nil {
		return nil, fmt.Errorf("generate task id: %w", err)
	}
	return &entities.Task{ID: id, Name: name, Status: status}, nil
}

// CreateTaskFromStatusString resolves the status name leniently; an
// unrecognized name falls back to NotStarted.
func (u *Usecase) CreateTaskFromStatusString(ctx context.Context, name, status string) (*entities.Task, error) {
	parsed, ok := entities.ParseTaskStatus(status)
	if !ok {
		parsed = entities.StatusNotStarted
	}
	return u.CreateTask(ctx, name, parsed)
}

// UpdateTaskStatus mutates the task in place so the change is visible
// wherever the task is indexed. Reports false on nil or empty input.
func (u *Usecase) UpdateTaskStatus(task *entities.Task, status entities.TaskStatus) bool {
	if task == nil || status == "" {
		return false
	}
	task.Status = status
	return true
}

// UpdateTaskStatusFromString reports false on an unrecognized status
// name instead of falling back.
func (u *Usecase) UpdateTaskStatusFromString(task *entities.Task, status string) bool {
	parsed, ok := entities.ParseTaskStatus(status)
	if !ok {
		return false
	}
	return u.UpdateTaskStatus(task, parsed)
}
