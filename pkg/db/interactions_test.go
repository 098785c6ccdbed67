package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func addInteraction(t *testing.T, db *DB, userID, postID, iType string, createdAt time.Time) {
	t.Helper()
	in := &Interaction{UserID: userID, PostID: postID, InteractionType: iType, CreatedAt: createdAt}
	require.NoError(t, db.AddInteraction(context.Background(), in))
	require.NotZero(t, in.ID)
}

func TestDB_AddInteraction(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()

	in := &Interaction{UserID: "u1", PostID: "p1", InteractionType: InteractionLike}
	require.NoError(t, db.AddInteraction(ctx, in))
	assert.NotZero(t, in.ID)
	assert.False(t, in.CreatedAt.IsZero(), "timestamp assigned at write time")

	t.Run("invalid type rejected by schema", func(t *testing.T) {
		bad := &Interaction{UserID: "u1", PostID: "p1", InteractionType: "share"}
		require.Error(t, db.AddInteraction(ctx, bad))
	})
}

func TestDB_GetRecentInteractionPostIDs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	addInteraction(t, db, "u1", "p1", InteractionView, now.Add(-time.Hour))
	addInteraction(t, db, "u2", "p1", InteractionLike, now.Add(-30*time.Minute))
	addInteraction(t, db, "u1", "p2", InteractionComment, now.Add(-10*time.Minute))
	addInteraction(t, db, "u1", "p3", InteractionView, now.Add(-48*time.Hour)) // outside window

	ids, err := db.GetRecentInteractionPostIDs(ctx, now.Add(-24*time.Hour), 100)
	require.NoError(t, err)
	assert.Equal(t, []string{"p2", "p1", "p1"}, ids, "newest first, duplicates kept")

	t.Run("limit caps scan", func(t *testing.T) {
		ids, err := db.GetRecentInteractionPostIDs(ctx, now.Add(-24*time.Hour), 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"p2", "p1"}, ids)
	})

	t.Run("empty window", func(t *testing.T) {
		ids, err := db.GetRecentInteractionPostIDs(ctx, now.Add(time.Hour), 100)
		require.NoError(t, err)
		assert.Empty(t, ids)
	})
}

func TestDB_GetActiveUserIDs(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	addInteraction(t, db, "bob", "p1", InteractionView, now.Add(-time.Hour))
	addInteraction(t, db, "bob", "p2", InteractionLike, now.Add(-time.Hour))
	addInteraction(t, db, "alice", "p1", InteractionComment, now.Add(-2*time.Hour))
	addInteraction(t, db, "carol", "p1", InteractionView, now.Add(-10*24*time.Hour)) // inactive

	users, err := db.GetActiveUserIDs(ctx, now.Add(-7*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, []string{"alice", "bob"}, users, "distinct and ordered")
}

func TestDB_GetUserInteractions(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	now := time.Now().UTC()

	addInteraction(t, db, "u1", "p1", InteractionView, now.Add(-3*time.Hour))
	addInteraction(t, db, "u1", "p2", InteractionLike, now.Add(-2*time.Hour))
	addInteraction(t, db, "u1", "p3", InteractionComment, now.Add(-time.Hour))
	addInteraction(t, db, "u2", "p1", InteractionView, now)

	interactions, err := db.GetUserInteractions(ctx, "u1", 2)
	require.NoError(t, err)
	require.Len(t, interactions, 2, "cap keeps the most recent")
	assert.Equal(t, "p3", interactions[0].PostID)
	assert.Equal(t, "p2", interactions[1].PostID)

	t.Run("unknown user", func(t *testing.T) {
		interactions, err := db.GetUserInteractions(ctx, "nobody", 10)
		require.NoError(t, err)
		assert.Empty(t, interactions)
	})
}
