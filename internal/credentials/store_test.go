package credentials

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores(t *testing.T) {
	stores := map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store { return NewMemoryStore() },
		"file": func(t *testing.T) Store {
			return NewFileStore(filepath.Join(t.TempDir(), "nested", "credentials.json"), "default")
		},
	}

	for name, newStore := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			store := newStore(t)

			_, err := store.Load(ctx)
			assert.ErrorIs(t, err, ErrNoCredentials)

			require.NoError(t, store.Save(ctx, &Credentials{AccessToken: "a", RefreshToken: "r"}))
			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, "a", got.AccessToken)
			assert.Equal(t, "r", got.RefreshToken)

			require.NoError(t, store.Purge(ctx))
			_, err = store.Load(ctx)
			assert.ErrorIs(t, err, ErrNoCredentials)

			require.NoError(t, store.Purge(ctx))
		})
	}
}

func TestFileStore_ProfilesAndPermissions(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credentials.json")

	work := NewFileStore(path, "work")
	home := NewFileStore(path, "home")
	require.NoError(t, work.Save(ctx, &Credentials{AccessToken: "w"}))
	require.NoError(t, home.Save(ctx, &Credentials{AccessToken: "h"}))

	require.NoError(t, work.Purge(ctx))

	got, err := home.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "h", got.AccessToken)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "credentials.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := NewFileStore(path, "default").Load(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode credentials file")
}
