package main

import (
	"context"
	"fmt"
	"os"

	"github.com/alexanderramin/cadence/internal/cli"
	"github.com/alexanderramin/cadence/internal/config"
	"github.com/alexanderramin/cadence/internal/db"
	"github.com/alexanderramin/cadence/internal/repository"
	"github.com/alexanderramin/cadence/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config file: $CADENCE_CONFIG or ~/.cadence/config.yaml. Missing is fine.
	cfgPath, err := config.DefaultPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	weekStart, err := cfg.WeekStart()
	if err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck
	logger.Debug("starting", zap.String("config", cfgPath), zap.String("db", cfg.DBPath))

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	defaults := cfg.AppSettings()
	planner := service.NewPlannerService(service.PlannerDeps{
		Blobs:    repository.NewSQLiteBlobRepo(database),
		UOW:      db.NewSQLiteUnitOfWork(database),
		Logger:   logger,
		Defaults: &defaults,
	}, service.NewLogUseCaseObserver(logger))

	app := &cli.App{
		Planner:   planner,
		WeekStart: weekStart,
	}

	// Prompts and the interactive calendar need a terminal on stdin.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.ExecuteContext(context.Background())
}
