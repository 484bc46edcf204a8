package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/ppopeskul/telegram-dashboard/internal/infrastructure/migrate"
)

const migrationsPath = "../../migrations"

// setupTestDB starts a throwaway postgres, applies the inbox schema through
// the same runner the server uses and returns a connected handle.
func setupTestDB(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()
	if testing.Short() {
		t.Skip("postgres container tests are skipped in -short mode")
	}

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("inbox"),
		tcpostgres.WithUsername("inbox"),
		tcpostgres.WithPassword("inbox"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(45*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	runner := migrate.NewRunner(&migrate.Config{DatabaseURL: dsn, MigrationsPath: migrationsPath}, zap.NewNop())
	require.NoError(t, runner.Up())

	db, err := sqlx.Connect("postgres", dsn)
	require.NoError(t, err)

	return db, func() {
		_ = db.Close()
		_ = container.Terminate(ctx)
	}
}

func cleanupTestData(db *sqlx.DB) {
	_, _ = db.Exec("TRUNCATE TABLE webhook_events RESTART IDENTITY")
}
