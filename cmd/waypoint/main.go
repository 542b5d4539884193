package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/waypoint/internal/cli"
	"github.com/alexanderramin/waypoint/internal/config"
	"github.com/alexanderramin/waypoint/internal/db"
	"github.com/alexanderramin/waypoint/internal/repository"
	"github.com/alexanderramin/waypoint/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Database and logging settings come from the environment only; the
	// hook payload is read later by the hook command itself.
	base := config.LoadConfig(config.HookInput{})

	// Warnings always reach stderr; per-run events only with WAYPOINT_LOG_RUNS.
	level := slog.LevelWarn
	if base.LogRuns {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	observer := service.NewSlogUseCaseObserver(logger)

	app := &cli.App{
		Stdin:      os.Stdin,
		LoadConfig: config.LoadConfig,
	}

	// Open run history. A missing or broken database never stops the hook.
	var uow db.UnitOfWork
	var runs repository.RunRepo
	if !base.HistoryDisabled() {
		database, err := db.OpenDB(base.DBPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "waypoint: run history unavailable: %v\n", err)
		} else {
			defer database.Close()
			uow = db.NewSQLiteUnitOfWork(database)
			runs = repository.NewSQLiteRunRepo(database)
			app.History = service.NewHistoryService(runs)
		}
	}

	app.Track = service.NewProgressService(uow, service.DefaultComponents, logger, observer)
	app.Status = service.NewStatusService(runs, service.DefaultComponents)

	// Hook payloads are only read from a pipe, never from a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
