package domain

import (
	"context"
	"testing"
	"time"

	"github.com/db-keli/task-management/config"
	"github.com/db-keli/task-management/internal/entities"
	"github.com/db-keli/task-management/internal/identity"
	"github.com/db-keli/task-management/internal/repository/memory"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newLiveUsecase wires the usecase against the real memory backend,
// sharing one issuer between the layers the way cmd does.
func newLiveUsecase(t *testing.T) *Usecase {
	t.Helper()
	log := zap.NewNop().Sugar()
	issuer := identity.NewIssuer()
	cfg := &config.Config{
		Store: config.StoreConfig{ProjectCapacity: 100, UserCapacity: 100},
		Seed: config.SeedConfig{
			AdminName:  "Admin",
			AdminEmail: "admin@example.com",
			UserName:   "Regular User",
			UserEmail:  "user@example.com",
		},
	}
	repo := memory.New(context.Background(), log, cfg, issuer)
	require.NoError(t, repo.OnStart(context.Background()))
	return New(log, context.Background(), repo, issuer, cfg.Seed, time.Second)
}

func mustAddProject(t *testing.T, uc *Usecase, name string, budget float64) *entities.Project {
	t.Helper()
	p, err := uc.CreateProject(context.Background(), "Software", name, "desc", budget, 3)
	require.NoError(t, err)
	_, err = uc.AddProject(context.Background(), p)
	require.NoError(t, err)
	return p
}

func mustAttachTask(t *testing.T, uc *Usecase, projectID, name string, status entities.TaskStatus) *entities.Task {
	t.Helper()
	task, err := uc.CreateTask(context.Background(), name, status)
	require.NoError(t, err)
	require.NoError(t, uc.AddTaskToProject(context.Background(), projectID, task))
	return task
}

func TestLive_ProjectLifecycle(t *testing.T) {
	ctx := context.Background()
	uc := newLiveUsecase(t)

	p := mustAddProject(t, uc, "Tracker", 1500)
	require.Equal(t, "P001", p.ID)

	got, err := uc.GetProjectByID(ctx, p.ID)
	require.NoError(t, err)
	require.Equal(t, 1500.0, got.Budget)

	mustAttachTask(t, uc, p.ID, "Design", entities.StatusDone)
	mustAttachTask(t, uc, p.ID, "Build", entities.StatusInProgress)

	assigned, err := uc.AssignUserToProject(ctx, p.ID, "U001")
	require.NoError(t, err)
	require.True(t, assigned)

	removed, err := uc.DeleteProject(ctx, p.ID)
	require.NoError(t, err)
	require.True(t, removed)

	tasks, err := uc.GetTasksForProject(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, tasks)

	ids, err := uc.GetAssignedUserIDsForProject(ctx, p.ID)
	require.NoError(t, err)
	require.Empty(t, ids)
}

func TestLive_CompletionAndReport(t *testing.T) {
	ctx := context.Background()
	uc := newLiveUsecase(t)

	p1 := mustAddProject(t, uc, "One", 100)
	p2 := mustAddProject(t, uc, "Two", 200)

	mustAttachTask(t, uc, p1.ID, "A", entities.StatusDone)
	mustAttachTask(t, uc, p1.ID, "B", entities.StatusDone)
	mustAttachTask(t, uc, p1.ID, "C", entities.StatusNotStarted)
	mustAttachTask(t, uc, p1.ID, "D", entities.StatusInProgress)

	ratio, err := uc.GetProjectCompletionPercentage(ctx, p1.ID)
	require.NoError(t, err)
	require.Equal(t, 0.5, ratio)

	// p2 still has no tasks, so the report refuses to build.
	_, err = uc.GenerateStatusReport(ctx)
	require.ErrorIs(t, err, entities.ErrEmptyProject)
	require.Contains(t, err.Error(), p2.ID)
	require.Contains(t, err.Error(), "has no tasks")

	task := mustAttachTask(t, uc, p2.ID, "E", entities.StatusNotStarted)
	rows, err := uc.GenerateStatusReport(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, p1.ID, rows[0].ProjectID)
	require.Equal(t, p2.ID, rows[1].ProjectID)
	require.Equal(t, 0.0, rows[1].Completion)

	// Status updates flow through to the next report run.
	require.True(t, uc.UpdateTaskStatus(task, entities.StatusDone))
	rows, err = uc.GenerateStatusReport(ctx)
	require.NoError(t, err)
	require.Equal(t, 1.0, rows[1].Completion)

	avg := uc.CalculateAverageCompletion(rows)
	require.Equal(t, 0.75, avg)
}

func TestLive_BootstrapAndUserRules(t *testing.T) {
	ctx := context.Background()
	uc := newLiveUsecase(t)

	require.NoError(t, uc.Bootstrap(ctx))

	current, err := uc.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", current.Email)
	require.True(t, current.CanManageUsers())

	// Duplicate email, case-insensitively.
	dup, err := uc.CreateUser(ctx, "Imposter", "ADMIN@example.com", false)
	require.NoError(t, err)
	_, err = uc.AddUser(ctx, dup)
	require.ErrorIs(t, err, entities.ErrDuplicateEmail)

	// Switching to a ghost leaves the current user alone.
	switched, err := uc.SwitchUser(ctx, "ghost@example.com")
	require.NoError(t, err)
	require.False(t, switched)
	current, err = uc.CurrentUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", current.Email)

	// The current user cannot be deleted.
	removed, err := uc.DeleteUser(ctx, "admin@example.com")
	require.NoError(t, err)
	require.False(t, removed)

	removed, err = uc.DeleteUser(ctx, "user@example.com")
	require.NoError(t, err)
	require.True(t, removed)
}

func TestLive_RemoveTaskMessages(t *testing.T) {
	ctx := context.Background()
	uc := newLiveUsecase(t)

	p := mustAddProject(t, uc, "One", 100)

	err := uc.RemoveTaskFromProject(ctx, p.ID, "T001")
	require.ErrorIs(t, err, entities.ErrTaskNotFound)
	require.Contains(t, err.Error(), "No tasks found")

	err = uc.RemoveTaskFromProject(ctx, "", "T001")
	require.Contains(t, err.Error(), "null")

	task := mustAttachTask(t, uc, p.ID, "A", entities.StatusNotStarted)
	require.NoError(t, uc.RemoveTaskFromProject(ctx, p.ID, task.ID))
}
