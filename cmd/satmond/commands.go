package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"satellite-monitor-backend/config"
	"satellite-monitor-backend/internal/db"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Serve the satellite status API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServices(cmd.Context(), newStatusService)
	},
}

var telemetryCmd = &cobra.Command{
	Use:   "telemetry",
	Short: "Serve the satellite telemetry API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServices(cmd.Context(), newTelemetryService)
	},
}

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Serve the users API",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServices(cmd.Context(), newUsersService)
	},
}

var allCmd = &cobra.Command{
	Use:   "all",
	Short: "Serve all three APIs from one process",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServices(cmd.Context(), newStatusService, newTelemetryService, newUsersService)
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the tables of every service and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		return migrate()
	},
}

// runServices builds the requested services and serves them until SIGINT or SIGTERM.
func runServices(parent context.Context, builders ...serviceBuilder) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := newSharedDeps()
	if err != nil {
		return err
	}

	services := make([]*service, 0, len(builders))
	defer func() {
		for _, svc := range services {
			svc.close()
		}
	}()
	for _, build := range builders {
		svc, err := build(deps)
		if err != nil {
			return err
		}
		services = append(services, svc)
	}

	return serve(ctx, services...)
}

func migrate() error {
	targets := []struct {
		name   string
		cfg    *config.DatabaseConfig
		models []any
	}{
		{"status", &cfg.Status.Database, db.StatusModels()},
		{"telemetry", &cfg.Telemetry.Database, db.TelemetryModels()},
		{"users", &cfg.Users.Database, db.UserModels()},
	}
	for _, t := range targets {
		gormDB, err := db.Init(t.cfg, t.models...)
		if err != nil {
			return fmt.Errorf("%s database: %w", t.name, err)
		}
		closeDB(gormDB)
		logger.Printf("%s tables ready", t.name)
	}
	return nil
}
