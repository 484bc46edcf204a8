package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ppopeskul/telegram-dashboard/internal/repository"
)

func TestRepository(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	repo := repository.NewRepository(db)

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(context.Background()))
	})

	t.Run("event repository is shared", func(t *testing.T) {
		require.NotNil(t, repo.Event())
		assert.Equal(t, repo.Event(), repo.Event())
	})

	t.Run("ping after close fails", func(t *testing.T) {
		require.NoError(t, db.Close())
		assert.Error(t, repo.Ping(context.Background()))
	})
}
