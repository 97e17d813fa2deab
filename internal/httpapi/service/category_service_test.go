package service

import (
	"context"
	"testing"
	"time"

	"jokehub/internal/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategoryService(env *testEnv) CategoryService {
	return NewCategoryService(env.categoryRepo, env.jokeRepo, env.userRepo)
}

func TestFavoriteCategories(t *testing.T) {
	env := newTestEnv(t)
	svc := newCategoryService(env)
	ctx := context.Background()

	viewer := env.user(t, "viewer")
	author := env.user(t, "author")
	puns := env.category(t, "puns")
	dark := env.category(t, "dark")

	// two posted pun jokes versus one highly rated dark joke
	env.joke(t, viewer.ID, "pun one", time.Now(), *puns)
	env.joke(t, viewer.ID, "pun two", time.Now(), *puns)
	darkJoke := env.joke(t, author.ID, "a dark one", time.Now(), *dark)
	env.rate(t, darkJoke.ID, viewer.ID, 5)

	favorites, err := svc.FavoriteCategories(ctx, viewer.ID)
	require.NoError(t, err)
	require.Len(t, favorites, 2)
	assert.Equal(t, puns.ID, favorites[0].Category.ID)
	assert.EqualValues(t, 2, favorites[0].Frequency)
	assert.Equal(t, dark.ID, favorites[1].Category.ID)
	assert.EqualValues(t, 1, favorites[1].Frequency)

	_, err = svc.FavoriteCategories(ctx, 9999)
	assert.True(t, apperr.IsNotFound(err))
}

func TestJokesForCategory(t *testing.T) {
	env := newTestEnv(t)
	svc := newCategoryService(env)
	ctx := context.Background()

	author := env.user(t, "author")
	rater := env.user(t, "rater")
	puns := env.category(t, "puns")
	dark := env.category(t, "dark")

	best := env.joke(t, author.ID, "best pun", time.Now().Add(-time.Hour), *puns)
	unrated := env.joke(t, author.ID, "new pun", time.Now(), *puns)
	env.joke(t, author.ID, "off topic", time.Now(), *dark)
	env.rate(t, best.ID, rater.ID, 5)

	list, err := svc.JokesForCategory(ctx, puns.ID, 10)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, best.ID, list[0].ID)
	assert.Equal(t, unrated.ID, list[1].ID)

	_, err = svc.JokesForCategory(ctx, 9999, 10)
	assert.True(t, apperr.IsNotFound(err))
}

func TestGetCategories_SortedByName(t *testing.T) {
	env := newTestEnv(t)
	svc := newCategoryService(env)

	env.category(t, "wordplay")
	env.category(t, "absurd")

	list, err := svc.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "absurd", list[0].Name)
	assert.Equal(t, "wordplay", list[1].Name)
}
