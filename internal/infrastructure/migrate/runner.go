// Package migrate applies the event inbox schema with golang-migrate.
package migrate

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // postgres:// driver
	_ "github.com/golang-migrate/migrate/v4/source/file"       // file:// source
	"go.uber.org/zap"
)

type Config struct {
	DatabaseURL    string
	MigrationsPath string
}

type Runner struct {
	config *Config
	logger *zap.Logger
}

// NewRunner creates a runner for the migrations at config.MigrationsPath.
func NewRunner(config *Config, logger *zap.Logger) *Runner {
	return &Runner{
		config: config,
		logger: logger,
	}
}

func (r *Runner) open() (*migrate.Migrate, func(), error) {
	path, err := filepath.Abs(r.config.MigrationsPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to resolve migrations path: %w", err)
	}

	m, err := migrate.New("file://"+filepath.ToSlash(path), r.config.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	closeFn := func() {
		srcErr, dbErr := m.Close()
		if err := errors.Join(srcErr, dbErr); err != nil {
			r.logger.Warn("Failed to close migrator", zap.Error(err))
		}
	}
	return m, closeFn, nil
}

// Up applies every pending migration and fails on a dirty schema.
func (r *Runner) Up() error {
	m, closeFn, err := r.open()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get version: %w", err)
	}
	if dirty {
		return fmt.Errorf("database is in dirty state at version %d", version)
	}

	r.logger.Info("Migrations applied", zap.Uint("version", version))
	return nil
}

// Steps moves n migrations up, or down when n is negative.
func (r *Runner) Steps(n int) error {
	m, closeFn, err := r.open()
	if err != nil {
		return err
	}
	defer closeFn()

	if err := m.Steps(n); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to move %d steps: %w", n, err)
	}
	return nil
}

// Rollback reverts the last applied migration.
func (r *Runner) Rollback() error {
	return r.Steps(-1)
}

// Version returns the current schema version; 0 means nothing was applied yet.
func (r *Runner) Version() (uint, bool, error) {
	m, closeFn, err := r.open()
	if err != nil {
		return 0, false, err
	}
	defer closeFn()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to get version: %w", err)
	}
	return version, dirty, nil
}
