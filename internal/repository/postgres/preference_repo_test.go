package postgres_test

import (
	"context"
	"testing"

	"github.com/dom/snowseeker/internal/domain"
	"github.com/dom/snowseeker/internal/favorites"
	"github.com/dom/snowseeker/internal/repository/postgres"
	"github.com/dom/snowseeker/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferenceRepository(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewPreferenceRepository(testDB.DB)
	ctx := context.Background()

	t.Run("get missing key", func(t *testing.T) {
		testDB.Truncate(t)

		_, err := repo.Get(ctx, "Favorites")
		assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)
	})

	t.Run("set then get", func(t *testing.T) {
		testDB.Truncate(t)

		require.NoError(t, repo.Set(ctx, "Favorites", []byte(`["aspen","zermatt"]`)))

		got, err := repo.Get(ctx, "Favorites")
		require.NoError(t, err)
		assert.JSONEq(t, `["aspen","zermatt"]`, string(got))
	})

	t.Run("set overwrites", func(t *testing.T) {
		testDB.Truncate(t)

		require.NoError(t, repo.Set(ctx, "Favorites", []byte(`["aspen","zermatt"]`)))
		require.NoError(t, repo.Set(ctx, "Favorites", []byte(`["niseko"]`)))

		got, err := repo.Get(ctx, "Favorites")
		require.NoError(t, err)
		assert.JSONEq(t, `["niseko"]`, string(got))

		var count int64
		require.NoError(t, testDB.DB.Model(&domain.Preference{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("rejects non json", func(t *testing.T) {
		testDB.Truncate(t)

		assert.Error(t, repo.Set(ctx, "Favorites", []byte("{not json")))
	})

	t.Run("delete", func(t *testing.T) {
		testDB.Truncate(t)

		require.NoError(t, repo.Set(ctx, "Favorites", []byte(`[]`)))
		require.NoError(t, repo.Delete(ctx, "Favorites"))

		_, err := repo.Get(ctx, "Favorites")
		assert.ErrorIs(t, err, domain.ErrPreferenceNotFound)
		assert.NoError(t, repo.Delete(ctx, "Favorites"))
	})

	t.Run("favorites survive a reload", func(t *testing.T) {
		testDB.Truncate(t)

		repos := postgres.NewRepositories(testDB.DB)
		store := favorites.Load(ctx, repos.Preference)
		store.Add(ctx, "whistler")
		store.Add(ctx, "davos")

		reloaded := favorites.Load(ctx, repos.Preference)
		assert.Equal(t, []string{"davos", "whistler"}, reloaded.IDs())
	})
}
