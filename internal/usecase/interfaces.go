package usecase

import (
	"context"

	"github.com/db-keli/task-management/internal/entities"
)

// ProjectUsecaseInterface abstracts project operations for the console layer.
type ProjectUsecaseInterface interface {
	CreateProject(ctx context.Context, projectType, name, description string, budget float64, teamSize int) (*entities.Project, error)
	AddProject(ctx context.Context, project *entities.Project) (*entities.Project, error)
	GetProjectByID(ctx context.Context, id string) (*entities.Project, error)
	GetAllProjects(ctx context.Context) ([]entities.Project, error)
	FilterProjectsByType(ctx context.Context, projectType string) ([]entities.Project, error)
	FilterProjectsByBudget(ctx context.Context, min, max float64) ([]entities.Project, error)
	DeleteProject(ctx context.Context, id string) (bool, error)
	AddTaskToProject(ctx context.Context, projectID string, task *entities.Task) error
	GetTasksForProject(ctx context.Context, projectID string) ([]*entities.Task, error)
	RemoveTaskFromProject(ctx context.Context, projectID, taskID string) error
	GetProjectCompletionPercentage(ctx context.Context, projectID string) (float64, error)
	AssignUserToProject(ctx context.Context, projectID, userID string) (bool, error)
	RemoveUserFromProject(ctx context.Context, projectID, userID string) (bool, error)
	GetAssignedUserIDsForProject(ctx context.Context, projectID string) ([]string, error)
}

// UserUsecaseInterface abstracts account operations, including the
// current-user pointer.
type UserUsecaseInterface interface {
	Bootstrap(ctx context.Context) error
	CreateUser(ctx context.Context, name, email string, isAdmin bool) (*entities.User, error)
	AddUser(ctx context.Context, user *entities.User) (*entities.User, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	GetUserByID(ctx context.Context, id string) (*entities.User, error)
	GetAllUsers(ctx context.Context) ([]entities.User, error)
	SwitchUser(ctx context.Context, email string) (bool, error)
	DeleteUser(ctx context.Context, email string) (bool, error)
	CurrentUser(ctx context.Context) (*entities.User, error)
	ValidateEmail(email string) error
	ValidateRole(role string) (bool, error)
}

// TaskUsecaseInterface abstracts task factories and status updates.
type TaskUsecaseInterface interface {
	CreateTask(ctx context.Context, name string, status entities.TaskStatus) (*entities.Task, error)
	CreateTaskFromStatusString(ctx context.Context, name, status string) (*entities.Task, error)
	UpdateTaskStatus(task *entities.Task, status entities.TaskStatus) bool
	UpdateTaskStatusFromString(task *entities.Task, status string) bool
}

// ReportUsecaseInterface abstracts aggregate reporting.
type ReportUsecaseInterface interface {
	GenerateStatusReport(ctx context.Context) ([]entities.StatusReportRow, error)
	CalculateAverageCompletion(rows []entities.StatusReportRow) float64
}
