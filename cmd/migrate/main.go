// Package main applies or reverts the event inbox schema.
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/config"
	"github.com/ppopeskul/telegram-dashboard/internal/infrastructure/migrate"
)

func main() {
	var (
		configPath     string
		migrationsPath string
		steps          int
	)

	flag.StringVar(&configPath, "config", "config.yaml", "Path to the configuration file")
	flag.StringVar(&migrationsPath, "path", "", "Path to migrations directory (defaults to database.migrations_path)")
	flag.IntVar(&steps, "steps", 0, "Number of migrations to apply or revert (0: all pending for up, one for down)")
	flag.Parse()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	args := flag.Args()
	if len(args) == 0 {
		logger.Fatal("Please specify a command: up, down, or version")
	}
	command := args[0]

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		if !cfg.Database.Enabled() {
			logger.Fatal("No database configured: set DATABASE_URL or the database section")
		}
		databaseURL = cfg.Database.GetURL()
	}
	if migrationsPath == "" {
		migrationsPath = cfg.Database.MigrationsPath
	}

	runner := migrate.NewRunner(&migrate.Config{
		DatabaseURL:    databaseURL,
		MigrationsPath: migrationsPath,
	}, logger)

	switch command {
	case "up":
		apply := runner.Up
		if steps > 0 {
			apply = func() error { return runner.Steps(steps) }
		}
		if err := apply(); err != nil {
			logger.Fatal("Failed to run migrations up", zap.Error(err))
		}
	case "down":
		if steps < 1 {
			steps = 1
		}
		if err := runner.Steps(-steps); err != nil {
			logger.Fatal("Failed to run migrations down", zap.Error(err))
		}
	case "version":
	default:
		logger.Fatal("Unknown command, use 'up', 'down', or 'version'", zap.String("command", command))
	}

	version, dirty, err := runner.Version()
	if err != nil {
		logger.Fatal("Failed to get version", zap.Error(err))
	}
	if dirty {
		logger.Warn("Database is in dirty state", zap.Uint("version", version))
		return
	}
	logger.Info("Current migration version", zap.Uint("version", version), zap.String("command", command))
}
