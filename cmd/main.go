// Package main wires the console front-end for the task management service.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/db-keli/task-management/config"
	"github.com/db-keli/task-management/internal/console"
	"github.com/db-keli/task-management/internal/identity"
	"github.com/db-keli/task-management/internal/repository"
	"github.com/db-keli/task-management/internal/usecase"
	"github.com/db-keli/task-management/pkg/logger"

	"github.com/spf13/cobra"
)

var version = "dev"

var rootCmd = &cobra.Command{
	Use:     "taskman",
	Short:   "In-memory project and task tracker",
	Long:    "taskman manages users, projects and tasks in memory through an interactive console.",
	Version: version,
	RunE:    run,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.Logging.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	issuer := identity.NewIssuer()

	repo, err := repository.New(ctx, "memory", log, cfg, issuer)
	if err != nil {
		log.Errorw("repository initialization error", "error", err)
		return err
	}
	if err := repo.OnStart(ctx); err != nil {
		log.Errorw("repository start error", "error", err)
		return err
	}
	defer func() {
		_ = repo.OnStop(context.Background())
	}()

	uc := usecase.New(log, ctx, repo, issuer, cfg.Seed, cfg.Usecase.OpTimeout)
	if err := uc.Bootstrap(ctx); err != nil {
		log.Errorw("bootstrap error", "error", err)
		return err
	}

	menu := console.NewMenu(log, uc, cmd.InOrStdin(), cmd.OutOrStdout())
	return menu.Run(ctx)
}
