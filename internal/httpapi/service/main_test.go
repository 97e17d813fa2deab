package service

import (
	"testing"
	"time"

	"jokehub/database"
	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// testEnv bundles a fresh in-memory database with the repositories the
// services under test depend on.
type testEnv struct {
	db           *gorm.DB
	userRepo     repository.UserRepository
	jokeRepo     repository.JokeRepository
	rateRepo     repository.RateRepository
	categoryRepo repository.CategoryRepository
	followRepo   repository.FollowRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open test database")
	require.NoError(t, database.Migrate(db), "migrate test database")
	return &testEnv{
		db:           db,
		userRepo:     repository.NewUserRepository(db),
		jokeRepo:     repository.NewJokeRepository(db),
		rateRepo:     repository.NewRateRepository(db),
		categoryRepo: repository.NewCategoryRepository(db),
		followRepo:   repository.NewFollowRepository(db),
	}
}

func (e *testEnv) user(t *testing.T, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username: &username,
		Name:     username,
		Email:    username + "@example.com",
		Password: "x",
	}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func (e *testEnv) joke(t *testing.T, userID int64, text string, createdAt time.Time, categories ...models.Category) *models.Joke {
	t.Helper()
	j := &models.Joke{
		Text:       text,
		UserID:     userID,
		CreatedAt:  createdAt,
		Categories: categories,
	}
	require.NoError(t, e.db.Create(j).Error)
	return j
}

func (e *testEnv) rate(t *testing.T, jokeID, userID int64, value int) {
	t.Helper()
	require.NoError(t, e.db.Create(&models.Rate{JokeID: jokeID, UserID: userID, Value: value}).Error)
}

func (e *testEnv) category(t *testing.T, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, e.db.Create(c).Error)
	return c
}
