package repository

import (
	"testing"
	"time"

	"jokehub/database"
	"jokehub/internal/httpapi/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB creates an in-memory SQLite database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "open test database")
	require.NoError(t, database.Migrate(db), "migrate test database")
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()
	u := &models.User{
		Username: &username,
		Name:     username,
		Email:    username + "@example.com",
		Password: "x",
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedJoke(t *testing.T, db *gorm.DB, userID int64, text string, createdAt time.Time, categories ...models.Category) *models.Joke {
	t.Helper()
	j := &models.Joke{
		Text:       text,
		UserID:     userID,
		CreatedAt:  createdAt,
		Categories: categories,
	}
	require.NoError(t, db.Create(j).Error)
	return j
}

func seedRate(t *testing.T, db *gorm.DB, jokeID, userID int64, value int) {
	t.Helper()
	require.NoError(t, db.Create(&models.Rate{JokeID: jokeID, UserID: userID, Value: value}).Error)
}

func seedCategory(t *testing.T, db *gorm.DB, name string) *models.Category {
	t.Helper()
	c := &models.Category{Name: name}
	require.NoError(t, db.Create(c).Error)
	return c
}
