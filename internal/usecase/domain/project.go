// Package domain contains application usecases orchestrating domain logic by project.
package domain

import (
	"context"
	"fmt"

	"github.com/db-keli/task-management/internal/entities"
	"github.com/db-keli/task-management/internal/identity"
)

// CreateProject builds a project with a freshly issued ID. The result
// is not stored; AddProject inserts it.
func (u *Usecase) CreateProject(ctx context.Context, projectType, name, description string, budget float64, teamSize int) (*entities.Project, error) {
	if budget <= 0 {
		return nil, fmt.Errorf("%w: budget must be positive, provided: %v", entities.ErrInvalidArgument, budget)
	}

	id, err := u.issuer.NextID(identity.KindProject)
	if err != nil {
		return nil, fmt.Errorf("generate project id: %w", err)
	}
	return &entities.Project{
		ID:          id,
		Type:        entities.ParseProjectType(projectType),
		Name:        name,
		Description: description,
		Budget:      budget,
		TeamSize:    teamSize,
	}, nil
}

// AddProject inserts a project into the store.
func (u *Usecase) AddProject(ctx context.Context, project *entities.Project) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if project == nil {
		return nil, fmt.Errorf("%w: project cannot be null", entities.ErrInvalidArgument)
	}
	res, err := u.repo.AddProject(ctx, project)
	if err != nil {
		return nil, err
	}
	u.log.Infow("project create", "project_id", res.ID)
	return res, nil
}

// GetProjectByID returns a project by ID.
func (u *Usecase) GetProjectByID(ctx context.Context, id string) (*entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetProjectByID(ctx, id)
}

// GetAllProjects returns a snapshot of every project in insertion order.
func (u *Usecase) GetAllProjects(ctx context.Context) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetAllProjects(ctx)
}

// FilterProjectsByType returns projects matching the type tag.
func (u *Usecase) FilterProjectsByType(ctx context.Context, projectType string) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.FilterProjectsByType(ctx, projectType)
}

// FilterProjectsByBudget returns projects with budget in [min, max].
func (u *Usecase) FilterProjectsByBudget(ctx context.Context, min, max float64) ([]entities.Project, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.FilterProjectsByBudget(ctx, min, max)
}

// DeleteProject removes a project and cascades over its indexes.
func (u *Usecase) DeleteProject(ctx context.Context, id string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.DeleteProject(ctx, id)
}

// AddTaskToProject attaches a task to a project, translating the
// index's silent refusal into a typed error.
func (u *Usecase) AddTaskToProject(ctx context.Context, projectID string, task *entities.Task) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" || task == nil {
		return fmt.Errorf("%w: project ID and task are required", entities.ErrInvalidArgument)
	}
	ok, err := u.repo.AddTask(ctx, projectID, task)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: project ID %q does not exist", entities.ErrProjectNotFound, projectID)
	}
	u.log.Infow("task attached", "project_id", projectID, "task_id", task.ID)
	return nil
}

// GetTasksForProject returns the project's ordered task list.
func (u *Usecase) GetTasksForProject(ctx context.Context, projectID string) ([]*entities.Task, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetTasksForProject(ctx, projectID)
}

// RemoveTaskFromProject detaches a task from a project.
func (u *Usecase) RemoveTaskFromProject(ctx context.Context, projectID, taskID string) error {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.RemoveTaskFromProject(ctx, projectID, taskID)
}

// GetProjectCompletionPercentage derives the completion ratio of the
// project's tasks, 0.0 when it has none.
func (u *Usecase) GetProjectCompletionPercentage(ctx context.Context, projectID string) (float64, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	if projectID == "" {
		return 0, fmt.Errorf("%w: project ID is required", entities.ErrInvalidArgument)
	}
	tasks, err := u.repo.GetTasksForProject(ctx, projectID)
	if err != nil {
		return 0, err
	}
	return entities.CompletionRatio(tasks), nil
}

// AssignUserToProject adds a user to the project's assignment set.
// Repeat assignments report false, not an error.
func (u *Usecase) AssignUserToProject(ctx context.Context, projectID, userID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.AssignUserToProject(ctx, projectID, userID)
}

// RemoveUserFromProject reports whether an assignment was removed.
func (u *Usecase) RemoveUserFromProject(ctx context.Context, projectID, userID string) (bool, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.RemoveUserFromProject(ctx, projectID, userID)
}

// GetAssignedUserIDsForProject returns the project's assignment set in
// assignment order.
func (u *Usecase) GetAssignedUserIDsForProject(ctx context.Context, projectID string) ([]string, error) {
	ctx, cancel := withTimeout(ctx, u.timeout)
	defer cancel()

	return u.repo.GetAssignedUserIDsForProject(ctx, projectID)
}
