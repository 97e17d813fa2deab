package service

import (
	"context"
	"testing"
	"time"

	"jokehub/internal/apperr"
	"jokehub/internal/httpapi/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFeedService(env *testEnv) FeedService {
	return NewFeedService(env.jokeRepo, env.followRepo, env.categoryRepo, env.userRepo)
}

func TestHomeFeed_UnknownUser(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)

	_, err := svc.HomeFeed(context.Background(), 9999, 10)
	assert.True(t, apperr.IsNotFound(err))
}

func TestHomeFeed_ColdStartNeverEmpty(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	ctx := context.Background()

	// viewer has no follows, no posts, no ratings; one unrated joke exists
	viewer := env.user(t, "viewer")
	author := env.user(t, "author")
	joke := env.joke(t, author.ID, "the only joke", time.Now())

	feed, err := svc.HomeFeed(ctx, viewer.ID, 10)
	require.NoError(t, err)
	require.Len(t, feed, 1)
	assert.Equal(t, joke.ID, feed[0].ID)
	assert.Equal(t, SourceRandom, feed[0].Source)
}

func TestHomeFeed_FolloweeJokesRankAboveFill(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	ctx := context.Background()

	u1 := env.user(t, "u1")
	u2 := env.user(t, "u2")
	stranger := env.user(t, "stranger")
	rater := env.user(t, "rater")

	// the stranger's joke leads the global leaderboard
	hit := env.joke(t, stranger.ID, "global hit", time.Now().Add(-time.Hour))
	env.rate(t, hit.ID, rater.ID, 5)

	// u1's fresh joke has no ratings at all
	j3 := env.joke(t, u1.ID, "brand new", time.Now())

	require.NoError(t, env.followRepo.Create(ctx, &models.Follow{FollowerID: u2.ID, FolloweeID: u1.ID}))

	feed, err := svc.HomeFeed(ctx, u2.ID, 10)
	require.NoError(t, err)
	require.Len(t, feed, 2)
	assert.Equal(t, j3.ID, feed[0].ID, "followee joke leads the feed")
	assert.Equal(t, SourceFollowed, feed[0].Source)
	assert.Equal(t, hit.ID, feed[1].ID)
	assert.Equal(t, SourceTopRated, feed[1].Source)
}

func TestHomeFeed_DedupKeepsHighestPrecedenceSource(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	ctx := context.Background()

	viewer := env.user(t, "viewer")
	author := env.user(t, "author")
	rater := env.user(t, "rater")

	// the followee's joke also tops the global leaderboard
	joke := env.joke(t, author.ID, "double source", time.Now())
	env.rate(t, joke.ID, rater.ID, 5)
	require.NoError(t, env.followRepo.Create(ctx, &models.Follow{FollowerID: viewer.ID, FolloweeID: author.ID}))

	feed, err := svc.HomeFeed(ctx, viewer.ID, 10)
	require.NoError(t, err)
	require.Len(t, feed, 1, "joke appears once despite matching two sources")
	assert.Equal(t, SourceFollowed, feed[0].Source)
}

func TestHomeFeed_AffinityPullsFavoriteCategories(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	ctx := context.Background()

	viewer := env.user(t, "viewer")
	author := env.user(t, "author")
	puns := env.category(t, "puns")
	dark := env.category(t, "dark")

	// viewer has posted in puns, establishing an affinity
	env.joke(t, viewer.ID, "my pun", time.Now().Add(-time.Hour), *puns)

	punJoke := env.joke(t, author.ID, "another pun", time.Now(), *puns)
	env.joke(t, author.ID, "a dark one", time.Now(), *dark)

	feed, err := svc.HomeFeed(ctx, viewer.ID, 2)
	require.NoError(t, err)
	require.NotEmpty(t, feed)
	assert.Equal(t, SourceAffinity, feed[0].Source)
	ids := []int64{feed[0].ID}
	if len(feed) > 1 {
		ids = append(ids, feed[1].ID)
	}
	assert.Contains(t, ids, punJoke.ID)
}

func TestHomeFeed_LimitRespected(t *testing.T) {
	env := newTestEnv(t)
	svc := newFeedService(env)
	ctx := context.Background()

	viewer := env.user(t, "viewer")
	author := env.user(t, "author")
	rater := env.user(t, "rater")
	for i := 0; i < 5; i++ {
		j := env.joke(t, author.ID, "joke", time.Now().Add(-time.Duration(i)*time.Minute))
		env.rate(t, j.ID, rater.ID, 4)
	}

	feed, err := svc.HomeFeed(ctx, viewer.ID, 3)
	require.NoError(t, err)
	assert.Len(t, feed, 3)
}
