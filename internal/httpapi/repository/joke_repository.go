package repository

import (
	"context"
	"fmt"
	"time"

	"jokehub/internal/httpapi/models"

	"gorm.io/gorm"
)

// RankedJoke is a joke row carrying its rating aggregate, produced by the
// leaderboard and feed queries.
type RankedJoke struct {
	models.Joke `gorm:"embedded"`
	AvgRating   float64 `gorm:"column:avg_rating" json:"avg_rating"`
	RatingCount int64   `gorm:"column:rating_count" json:"rating_count"`
}

// rankedOrder is the deterministic leaderboard ordering: average first, then
// evidence (count), then recency. Equal jokes always come back in the same
// order regardless of storage engine.
const rankedOrder = "avg_rating DESC, rating_count DESC, jokes.created_at DESC"

type JokeRepository interface {
	Create(ctx context.Context, joke *models.Joke) error
	GetByID(ctx context.Context, id int64) (*models.Joke, error)
	GetByUser(ctx context.Context, userID int64) ([]models.Joke, error)
	GetByUsername(ctx context.Context, username string) ([]models.Joke, error)
	CountByUser(ctx context.Context, userID int64) (int64, error)
	Random(ctx context.Context, n int) ([]models.Joke, error)
	TopRated(ctx context.Context, since *time.Time, limit int) ([]RankedJoke, error)
	TopRatedByAuthor(ctx context.Context, userID int64, limit int) ([]RankedJoke, error)
	RankedByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]RankedJoke, error)
	RankedByCategories(ctx context.Context, categoryIDs []int64, limit int) ([]RankedJoke, error)
}

type jokeRepository struct {
	db *gorm.DB
}

func NewJokeRepository(db *gorm.DB) JokeRepository {
	return &jokeRepository{db: db}
}

func (r *jokeRepository) Create(ctx context.Context, joke *models.Joke) error {
	if err := r.db.WithContext(ctx).Create(joke).Error; err != nil {
		return fmt.Errorf("create joke: %w", err)
	}
	return nil
}

func (r *jokeRepository) GetByID(ctx context.Context, id int64) (*models.Joke, error) {
	var j models.Joke
	if err := r.db.WithContext(ctx).Preload("Categories").First(&j, id).Error; err != nil {
		return nil, err
	}
	return &j, nil
}

func (r *jokeRepository) GetByUser(ctx context.Context, userID int64) ([]models.Joke, error) {
	var list []models.Joke
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("get jokes by user: %w", err)
	}
	return list, nil
}

func (r *jokeRepository) GetByUsername(ctx context.Context, username string) ([]models.Joke, error) {
	var list []models.Joke
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Joins("JOIN users ON users.id = jokes.user_id").
		Where("users.username = ?", username).
		Order("jokes.created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("get jokes by username: %w", err)
	}
	return list, nil
}

func (r *jokeRepository) CountByUser(ctx context.Context, userID int64) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Joke{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	return count, err
}

// Random draws n jokes uniformly at random. RANDOM() is understood by both
// postgres and sqlite, so the same query serves production and tests.
func (r *jokeRepository) Random(ctx context.Context, n int) ([]models.Joke, error) {
	var list []models.Joke
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Order("RANDOM()").
		Limit(n).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("random jokes: %w", err)
	}
	return list, nil
}

// TopRated ranks jokes created at or after since (nil means all time).
// The inner join excludes zero-rating jokes: an item with no evidence never
// outranks a rated one.
func (r *jokeRepository) TopRated(ctx context.Context, since *time.Time, limit int) ([]RankedJoke, error) {
	q := r.db.WithContext(ctx).Model(&models.Joke{}).
		Select("jokes.*, AVG(rates.value) AS avg_rating, COUNT(rates.id) AS rating_count").
		Joins("JOIN rates ON rates.joke_id = jokes.id").
		Group("jokes.id")
	if since != nil {
		q = q.Where("jokes.created_at >= ?", *since)
	}

	var list []RankedJoke
	if err := q.Order(rankedOrder).Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("top rated jokes: %w", err)
	}
	return list, nil
}

// TopRatedByAuthor ranks a single author's rated jokes, all time.
func (r *jokeRepository) TopRatedByAuthor(ctx context.Context, userID int64, limit int) ([]RankedJoke, error) {
	var list []RankedJoke
	err := r.db.WithContext(ctx).Model(&models.Joke{}).
		Select("jokes.*, AVG(rates.value) AS avg_rating, COUNT(rates.id) AS rating_count").
		Joins("JOIN rates ON rates.joke_id = jokes.id").
		Where("jokes.user_id = ?", userID).
		Group("jokes.id").
		Order(rankedOrder).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("top rated jokes by author: %w", err)
	}
	return list, nil
}

// RankedByAuthors returns jokes by any of the given authors, rated or not.
// The left join keeps fresh unrated jokes visible in follow-based feeds;
// COALESCE puts them after rated ones.
func (r *jokeRepository) RankedByAuthors(ctx context.Context, authorIDs []int64, limit int) ([]RankedJoke, error) {
	if len(authorIDs) == 0 {
		return nil, nil
	}
	var list []RankedJoke
	err := r.db.WithContext(ctx).Model(&models.Joke{}).
		Select("jokes.*, COALESCE(AVG(rates.value), 0) AS avg_rating, COUNT(rates.id) AS rating_count").
		Joins("LEFT JOIN rates ON rates.joke_id = jokes.id").
		Where("jokes.user_id IN ?", authorIDs).
		Group("jokes.id").
		Order(rankedOrder).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("ranked jokes by authors: %w", err)
	}
	return list, nil
}

// RankedByCategories returns jokes tagged with any of the given categories,
// ordered by rating then recency. Zero-rated jokes are included and sort
// after rated ones (rating values start at 1).
func (r *jokeRepository) RankedByCategories(ctx context.Context, categoryIDs []int64, limit int) ([]RankedJoke, error) {
	if len(categoryIDs) == 0 {
		return nil, nil
	}
	// COUNT(DISTINCT ...) because a joke tagged with several of the selected
	// categories joins its rate rows once per tag.
	var list []RankedJoke
	err := r.db.WithContext(ctx).Model(&models.Joke{}).
		Select("jokes.*, COALESCE(AVG(rates.value), 0) AS avg_rating, COUNT(DISTINCT rates.id) AS rating_count").
		Joins("JOIN joke_categories jc ON jc.joke_id = jokes.id").
		Joins("LEFT JOIN rates ON rates.joke_id = jokes.id").
		Where("jc.category_id IN ?", categoryIDs).
		Group("jokes.id").
		Order(rankedOrder).
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("ranked jokes by categories: %w", err)
	}
	return list, nil
}
