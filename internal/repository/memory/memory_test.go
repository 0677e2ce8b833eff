package memory

import (
	"context"
	"testing"

	"github.com/db-keli/task-management/config"
	"github.com/db-keli/task-management/internal/entities"
	"github.com/db-keli/task-management/internal/identity"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRepo(t *testing.T, projectCap, userCap int) *Memory {
	t.Helper()
	cfg := &config.Config{
		Store: config.StoreConfig{ProjectCapacity: projectCap, UserCapacity: userCap},
	}
	m := New(context.Background(), zap.NewNop().Sugar(), cfg, identity.NewIssuer())
	require.NoError(t, m.OnStart(context.Background()))
	return m
}

func addProject(t *testing.T, m *Memory, name string, budget float64) *entities.Project {
	t.Helper()
	p, err := m.AddProject(context.Background(), &entities.Project{
		Type:     entities.TypeSoftware,
		Name:     name,
		Budget:   budget,
		TeamSize: 3,
	})
	require.NoError(t, err)
	return p
}

func addUser(t *testing.T, m *Memory, name, email string, role entities.Role) *entities.User {
	t.Helper()
	u, err := m.AddUser(context.Background(), &entities.User{Name: name, Email: email, Role: role})
	require.NoError(t, err)
	return u
}
