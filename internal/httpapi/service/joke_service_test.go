package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"jokehub/internal/apperr"
	"jokehub/internal/httpapi/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJokeService(env *testEnv) JokeService {
	return NewJokeService(
		env.jokeRepo,
		env.userRepo,
		env.categoryRepo,
		repository.NewReportRepository(env.db),
		repository.NewCommentRepository(env.db),
	)
}

func TestPostJoke(t *testing.T) {
	env := newTestEnv(t)
	svc := newJokeService(env)
	ctx := context.Background()

	author := env.user(t, "author")
	puns := env.category(t, "puns")

	joke, err := svc.PostJoke(ctx, author.ID, "  why did the gopher cross the road  ", []int64{puns.ID})
	require.NoError(t, err)
	assert.Equal(t, "why did the gopher cross the road", joke.Text)
	require.Len(t, joke.Categories, 1)
	assert.Equal(t, puns.ID, joke.Categories[0].ID)

	loaded, err := svc.GetJoke(ctx, joke.ID)
	require.NoError(t, err)
	require.Len(t, loaded.Categories, 1)
}

func TestPostJoke_Validation(t *testing.T) {
	env := newTestEnv(t)
	svc := newJokeService(env)
	ctx := context.Background()

	author := env.user(t, "author")

	_, err := svc.PostJoke(ctx, author.ID, "   ", nil)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.PostJoke(ctx, author.ID, strings.Repeat("x", MaxJokeLength+1), nil)
	assert.True(t, apperr.IsValidation(err))

	_, err = svc.PostJoke(ctx, 9999, "fine text", nil)
	assert.True(t, apperr.IsNotFound(err))

	_, err = svc.PostJoke(ctx, author.ID, "fine text", []int64{9999})
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetJokesByUsername(t *testing.T) {
	env := newTestEnv(t)
	svc := newJokeService(env)
	ctx := context.Background()

	author := env.user(t, "author")
	env.joke(t, author.ID, "one", time.Now())
	env.joke(t, author.ID, "two", time.Now())

	jokes, err := svc.GetJokesByUsername(ctx, "author")
	require.NoError(t, err)
	assert.Len(t, jokes, 2)

	_, err = svc.GetJokesByUsername(ctx, "nobody")
	assert.True(t, apperr.IsNotFound(err))
}

func TestReportAndCommentFlow(t *testing.T) {
	env := newTestEnv(t)
	svc := newJokeService(env)
	ctx := context.Background()

	author := env.user(t, "author")
	reader := env.user(t, "reader")
	joke := env.joke(t, author.ID, "hmm", time.Now())

	_, err := svc.ReportJoke(ctx, joke.ID, reader.ID, "  ")
	assert.True(t, apperr.IsValidation(err))

	report, err := svc.ReportJoke(ctx, joke.ID, reader.ID, "not funny")
	require.NoError(t, err)
	assert.NotZero(t, report.ID)

	_, err = svc.CommentOnJoke(ctx, 9999, reader.ID, "hello")
	assert.True(t, apperr.IsNotFound(err))

	comment, err := svc.CommentOnJoke(ctx, joke.ID, reader.ID, "heard it before")
	require.NoError(t, err)
	assert.NotZero(t, comment.ID)

	comments, err := svc.GetComments(ctx, joke.ID)
	require.NoError(t, err)
	require.Len(t, comments, 1)
	assert.Equal(t, "heard it before", comments[0].Content)
}
