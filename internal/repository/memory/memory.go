// Package memory implements the repository against process-local state.
//
// Stores preserve insertion order in bounded slices with compacting
// deletion; relationship indexes live in maps keyed by project ID. A
// single logical actor drives all mutations, so the backend carries no
// locking; ID issuance goes through the injected identity.Issuer, which
// is safe under concurrent callers.
package memory

import (
	"context"

	"github.com/db-keli/task-management/config"
	"github.com/db-keli/task-management/internal/entities"
	"github.com/db-keli/task-management/internal/identity"

	"go.uber.org/zap"
)

// Memory holds every entity store and relationship index.
type Memory struct {
	baseCtx context.Context
	log     *zap.SugaredLogger
	cfg     config.StoreConfig
	issuer  *identity.Issuer

	projects []entities.Project
	users    []entities.User

	projectTasks     map[string][]*entities.Task
	projectAssignees map[string][]string
}

// New creates a memory repository instance. Capacities are fixed here
// and never grow.
func New(ctx context.Context, log *zap.SugaredLogger, cfg *config.Config, issuer *identity.Issuer) *Memory {
	return &Memory{
		baseCtx: ctx,
		log:     log.Named("repo.memory"),
		cfg:     cfg.Store,
		issuer:  issuer,
	}
}

// OnStart allocates the backing collections.
func (m *Memory) OnStart(_ context.Context) error {
	m.projects = make([]entities.Project, 0, m.cfg.ProjectCapacity)
	m.users = make([]entities.User, 0, m.cfg.UserCapacity)
	m.projectTasks = make(map[string][]*entities.Task)
	m.projectAssignees = make(map[string][]string)

	m.log.Infow("memory store ready",
		"project_capacity", m.cfg.ProjectCapacity,
		"user_capacity", m.cfg.UserCapacity,
	)
	return nil
}

// OnStop releases nothing; state lives for the process lifetime.
func (m *Memory) OnStop(_ context.Context) error {
	return nil
}
