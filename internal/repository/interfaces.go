// Package repository contains repository interfaces for storage backends.
package repository

import (
	"context"

	"github.com/db-keli/task-management/internal/entities"
)

// LifecycleInterface describes storage startup/shutdown hooks.
type LifecycleInterface interface {
	OnStart(_ context.Context) error
	OnStop(_ context.Context) error
}

// ProjectInterface exposes the project store.
type ProjectInterface interface {
	AddProject(ctx context.Context, project *entities.Project) (*entities.Project, error)
	GetProjectByID(ctx context.Context, id string) (*entities.Project, error)
	GetAllProjects(ctx context.Context) ([]entities.Project, error)
	FilterProjectsByType(ctx context.Context, projectType string) ([]entities.Project, error)
	FilterProjectsByBudget(ctx context.Context, min, max float64) ([]entities.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
}

// UserInterface exposes the user store.
type UserInterface interface {
	AddUser(ctx context.Context, user *entities.User) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUserByID(ctx context.Context, id string) (*entities.User, error)
	GetAllUsers(ctx context.Context) ([]entities.User, error)
	DeleteUser(ctx context.Context, email string) (bool, error)
}

// TaskIndexInterface exposes the project-to-tasks relationship index.
type TaskIndexInterface interface {
	AddTask(ctx context.Context, projectID string, task *entities.Task) (bool, error)
	GetTasksForProject(ctx context.Context, projectID string) ([]*entities.Task, error)
	RemoveTaskFromProject(ctx context.Context, projectID, taskID string) error
}

// AssignmentIndexInterface exposes the project-to-assigned-users index.
type AssignmentIndexInterface interface {
	AssignUserToProject(ctx context.Context, projectID, userID string) (bool, error)
	RemoveUserFromProject(ctx context.Context, projectID, userID string) (bool, error)
	GetAssignedUserIDsForProject(ctx context.Context, projectID string) ([]string, error)
}
