package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDB_Recommendations(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("nil before first run", func(t *testing.T) {
		rec, err := db.GetRecommendations(ctx, "u1")
		require.NoError(t, err)
		assert.Nil(t, rec)
	})

	t.Run("store and read back", func(t *testing.T) {
		require.NoError(t, db.ReplaceRecommendations(ctx, "u1", []string{"p1", "p2", "p3"}, ModePersonalized))

		rec, err := db.GetRecommendations(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, "u1", rec.UserID)
		assert.Equal(t, Strings{"p1", "p2", "p3"}, rec.PostIDs, "order preserved")
		assert.Equal(t, ModePersonalized, rec.Mode)
		assert.False(t, rec.UpdatedAt.IsZero())
	})

	t.Run("replace overwrites per user", func(t *testing.T) {
		require.NoError(t, db.ReplaceRecommendations(ctx, "u1", []string{"p9"}, ModeColdStart))

		rec, err := db.GetRecommendations(ctx, "u1")
		require.NoError(t, err)
		require.NotNil(t, rec)
		assert.Equal(t, Strings{"p9"}, rec.PostIDs)
		assert.Equal(t, ModeColdStart, rec.Mode)
	})

	t.Run("users isolated", func(t *testing.T) {
		require.NoError(t, db.ReplaceRecommendations(ctx, "u2", []string{"p5"}, ModePersonalized))

		rec, err := db.GetRecommendations(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, Strings{"p9"}, rec.PostIDs, "other user's write does not leak")
	})

	t.Run("invalid mode rejected", func(t *testing.T) {
		err := db.ReplaceRecommendations(ctx, "u3", []string{"p1"}, "random")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid recommendation mode")
	})
}
