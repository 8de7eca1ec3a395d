package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferencesRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("get missing key returns nil without error", func(t *testing.T) {
		repo := NewPreferencesRepository()

		val, err := repo.Get(ctx, "favorites")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("set then get", func(t *testing.T) {
		repo := NewPreferencesRepository()

		require.NoError(t, repo.Set(ctx, "premium-flag", []byte("true")))

		val, err := repo.Get(ctx, "premium-flag")
		require.NoError(t, err)
		assert.Equal(t, []byte("true"), val)
	})

	t.Run("last write wins", func(t *testing.T) {
		repo := NewPreferencesRepository()

		require.NoError(t, repo.Set(ctx, "user-streak", []byte(`{"current_streak":1}`)))
		require.NoError(t, repo.Set(ctx, "user-streak", []byte(`{"current_streak":2}`)))

		val, err := repo.Get(ctx, "user-streak")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"current_streak":2}`), val)
	})

	t.Run("remove", func(t *testing.T) {
		repo := NewPreferencesRepository()

		require.NoError(t, repo.Set(ctx, "visited-shops", []byte("[]")))
		require.NoError(t, repo.Remove(ctx, "visited-shops"))

		val, err := repo.Get(ctx, "visited-shops")
		require.NoError(t, err)
		assert.Nil(t, val)
	})

	t.Run("stored blob isolated from caller mutation", func(t *testing.T) {
		repo := NewPreferencesRepository()

		blob := []byte("original")
		require.NoError(t, repo.Set(ctx, "key", blob))
		blob[0] = 'X'

		val, err := repo.Get(ctx, "key")
		require.NoError(t, err)
		assert.Equal(t, []byte("original"), val)
	})
}
