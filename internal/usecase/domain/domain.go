package domain

import (
	"context"
	"time"

	"github.com/db-keli/task-management/config"
	"github.com/db-keli/task-management/internal/identity"
	"github.com/db-keli/task-management/internal/repository"

	"go.uber.org/zap"
)

// Usecase struct implements all usecase interfaces. The current-user
// pointer lives here, not in the stores; a single logical actor drives
// calls sequentially.
type Usecase struct {
	ctx     context.Context
	log     *zap.SugaredLogger
	repo    repository.Repository
	issuer  *identity.Issuer
	seed    config.SeedConfig
	timeout time.Duration

	currentEmail string
}

// New constructs a new usecase layer with its dependencies.
func New(
	log *zap.SugaredLogger,
	ctx context.Context,
	repo repository.Repository,
	issuer *identity.Issuer,
	seed config.SeedConfig,
	timeout time.Duration,
) *Usecase {
	return &Usecase{
		ctx:     ctx,
		log:     log,
		repo:    repo,
		issuer:  issuer,
		seed:    seed,
		timeout: timeout,
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, d)
}
