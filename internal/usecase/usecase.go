package usecase

import (
	"context"
	"time"

	"github.com/db-keli/task-management/config"
	"github.com/db-keli/task-management/internal/identity"
	"github.com/db-keli/task-management/internal/repository"
	"github.com/db-keli/task-management/internal/usecase/domain"

	"go.uber.org/zap"
)

// InterfaceUsecase aggregates all usecase interfaces.
type InterfaceUsecase interface {
	ProjectUsecaseInterface
	UserUsecaseInterface
	TaskUsecaseInterface
	ReportUsecaseInterface
}

// New constructs a new usecase layer with its dependencies.
func New(log *zap.SugaredLogger, ctx context.Context, repo repository.Repository, issuer *identity.Issuer, seed config.SeedConfig, timeout time.Duration) InterfaceUsecase {
	return domain.New(log, ctx, repo, issuer, seed, timeout)
}
