package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dom/snowseeker/internal/domain"
	"github.com/dom/snowseeker/internal/repository/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T, path string) *sqlite.Store {
	t.Helper()

	store, err := sqlite.New(path)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestStore_SetGet(t *testing.T) {
	store := newStore(t, filepath.Join(t.TempDir(), "prefs.sqlite"))
	ctx := context.Background()

	_, err := store.Get(ctx, "Favorites")
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	require.NoError(t, store.Set(ctx, "Favorites", []byte(`["aspen"]`)))

	got, err := store.Get(ctx, "Favorites")
	require.NoError(t, err)
	assert.JSONEq(t, `["aspen"]`, string(got))
}

func TestStore_SetOverwrites(t *testing.T) {
	store := newStore(t, filepath.Join(t.TempDir(), "prefs.sqlite"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "Favorites", []byte(`["aspen","zermatt"]`)))
	require.NoError(t, store.Set(ctx, "Favorites", []byte(`["niseko"]`)))

	got, err := store.Get(ctx, "Favorites")
	require.NoError(t, err)
	assert.Equal(t, `["niseko"]`, string(got))
}

func TestStore_StoresArbitraryBytes(t *testing.T) {
	store := newStore(t, filepath.Join(t.TempDir(), "prefs.sqlite"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "Favorites", []byte("{not json")))

	got, err := store.Get(ctx, "Favorites")
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(got))
}

func TestStore_Delete(t *testing.T) {
	store := newStore(t, filepath.Join(t.TempDir(), "prefs.sqlite"))
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "k", []byte(`1`)))
	require.NoError(t, store.Delete(ctx, "k"))

	_, err := store.Get(ctx, "k")
	assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)

	// Deleting a missing key is not an error.
	assert.NoError(t, store.Delete(ctx, "k"))
}

func TestStore_PersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.sqlite")
	ctx := context.Background()

	first, err := sqlite.New(path)
	require.NoError(t, err)
	require.NoError(t, first.Set(ctx, "Favorites", []byte(`["whistler"]`)))
	require.NoError(t, first.Close())

	second := newStore(t, path)
	got, err := second.Get(ctx, "Favorites")
	require.NoError(t, err)
	assert.Equal(t, `["whistler"]`, string(got))
}

func TestNewRepositories(t *testing.T) {
	store, err := sqlite.New(filepath.Join(t.TempDir(), "prefs.sqlite"))
	require.NoError(t, err)

	repos := sqlite.NewRepositories(store)
	require.NotNil(t, repos.Preference)
	assert.NoError(t, repos.Close())
}
