package repository

import (
	"context"
	"testing"

	"jokehub/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowCreate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: a.ID, FolloweeID: b.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: a.ID, FolloweeID: b.ID}))

	var count int64
	require.NoError(t, db.Model(&models.Follow{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestFollowDelete_MissingEdgeIsNoop(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")

	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))
}

func TestFollowRoundTrip(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")

	before, err := repo.FolloweeIDs(ctx, a.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: a.ID, FolloweeID: b.ID}))
	require.NoError(t, repo.Delete(ctx, a.ID, b.ID))

	after, err := repo.FolloweeIDs(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, before, after, "unfollow restores the pre-follow edge set")
}

func TestFollowDirections(t *testing.T) {
	db := newTestDB(t)
	repo := NewFollowRepository(db)
	ctx := context.Background()

	a := seedUser(t, db, "a")
	b := seedUser(t, db, "b")
	c := seedUser(t, db, "c")

	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: a.ID, FolloweeID: c.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: b.ID, FolloweeID: c.ID}))
	require.NoError(t, repo.Create(ctx, &models.Follow{FollowerID: c.ID, FolloweeID: a.ID}))

	followers, err := repo.FollowerIDs(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID, b.ID}, followers, "ascending id order")

	followees, err := repo.FolloweeIDs(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{a.ID}, followees)

	exists, err := repo.Exists(ctx, a.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(ctx, a.ID, b.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}
