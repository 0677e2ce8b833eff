// Package repository provides the factory for storage backends.
package repository

import (
	"context"
	"fmt"

	"github.com/db-keli/task-management/config"
	"github.com/db-keli/task-management/internal/identity"
	"github.com/db-keli/task-management/internal/repository/memory"

	"go.uber.org/zap"
)

// Repository aggregates all storage interfaces.
type Repository interface {
	LifecycleInterface
	ProjectInterface
	UserInterface
	TaskIndexInterface
	AssignmentIndexInterface
}

// New constructs a repository backend by name.
func New(ctx context.Context, name string, log *zap.SugaredLogger, cfg *config.Config, issuer *identity.Issuer) (Repository, error) {
	switch name {
	case "memory":
		return memory.New(ctx, log, cfg, issuer), nil
	default:
		return nil, fmt.Errorf("unknown repo backend: %s", name)
	}
}
