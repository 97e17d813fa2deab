package service

import (
	"context"
	"testing"
	"time"

	"jokehub/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRating_RejectsOutOfRange(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRatingService(env.rateRepo, env.jokeRepo, env.userRepo)
	ctx := context.Background()

	author := env.user(t, "author")
	rater := env.user(t, "rater")
	joke := env.joke(t, author.ID, "a joke", time.Now())

	for _, v := range []int{0, 6, -1, 100} {
		_, err := svc.SubmitRating(ctx, joke.ID, rater.ID, v)
		assert.True(t, apperr.IsValidation(err), "value %d must be rejected", v)
	}
}

func TestSubmitRating_UnknownJoke(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRatingService(env.rateRepo, env.jokeRepo, env.userRepo)

	rater := env.user(t, "rater")
	_, err := svc.SubmitRating(context.Background(), 9999, rater.ID, 3)
	assert.True(t, apperr.IsNotFound(err))
}

func TestSubmitRating_UpsertKeepsLatestValue(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRatingService(env.rateRepo, env.jokeRepo, env.userRepo)
	ctx := context.Background()

	author := env.user(t, "author")
	rater := env.user(t, "rater")
	joke := env.joke(t, author.ID, "a joke", time.Now())

	first, err := svc.SubmitRating(ctx, joke.ID, rater.ID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Value)

	second, err := svc.SubmitRating(ctx, joke.ID, rater.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Value)

	summary, err := svc.AverageForJoke(ctx, joke.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), summary.Count, "upsert, not duplication")
	assert.InDelta(t, 5.0, summary.Average, 0.001)
}

func TestAverageForJoke_NoRatingsSentinel(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRatingService(env.rateRepo, env.jokeRepo, env.userRepo)

	author := env.user(t, "author")
	joke := env.joke(t, author.ID, "a joke", time.Now())

	summary, err := svc.AverageForJoke(context.Background(), joke.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), summary.Count)
	assert.False(t, summary.Average != summary.Average, "never NaN")
	assert.Equal(t, 0.0, summary.Average)
}

func TestCountJokesForUser(t *testing.T) {
	env := newTestEnv(t)
	svc := NewRatingService(env.rateRepo, env.jokeRepo, env.userRepo)
	ctx := context.Background()

	author := env.user(t, "author")
	env.joke(t, author.ID, "one", time.Now())
	env.joke(t, author.ID, "two", time.Now())

	count, err := svc.CountJokesForUser(ctx, author.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = svc.CountJokesForUser(ctx, 9999)
	assert.True(t, apperr.IsNotFound(err))
}
