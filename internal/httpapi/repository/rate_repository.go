package repository

import (
	"context"

	"jokehub/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RatingSummary is the aggregate over a set of rates. Count == 0 means
// "no ratings"; Average is zero in that case and must not be interpreted.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int64   `json:"count"`
}

type RateRepository interface {
	Upsert(ctx context.Context, rate *models.Rate) error
	GetByJokeAndUser(ctx context.Context, jokeID, userID int64) (*models.Rate, error)
	SummaryForJoke(ctx context.Context, jokeID int64) (RatingSummary, error)
	SummaryForUser(ctx context.Context, userID int64) (RatingSummary, error)
}

type rateRepository struct {
	db *gorm.DB
}

func NewRateRepository(db *gorm.DB) RateRepository {
	return &rateRepository{db: db}
}

// Upsert inserts the rate or, when the (joke_id, user_id) pair already has a
// row, replaces its value in place. The conflict target is the unique index
// on the pair, so concurrent submissions for the same pair serialize at the
// database instead of surfacing as constraint errors.
func (r *rateRepository) Upsert(ctx context.Context, rate *models.Rate) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "joke_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(rate).Error
}

func (r *rateRepository) GetByJokeAndUser(ctx context.Context, jokeID, userID int64) (*models.Rate, error) {
	var rate models.Rate
	err := r.db.WithContext(ctx).
		Where("joke_id = ? AND user_id = ?", jokeID, userID).
		First(&rate).Error
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

// SummaryForJoke computes the mean and count over a joke's ratings in one
// aggregate query. COALESCE keeps the zero-rating case at 0 instead of NULL.
func (r *rateRepository) SummaryForJoke(ctx context.Context, jokeID int64) (RatingSummary, error) {
	var s RatingSummary
	err := r.db.WithContext(ctx).Model(&models.Rate{}).
		Select("COALESCE(AVG(value), 0) AS average, COUNT(*) AS count").
		Where("joke_id = ?", jokeID).
		Scan(&s).Error
	return s, err
}

// SummaryForUser aggregates over all ratings received across all jokes the
// user authored.
func (r *rateRepository) SummaryForUser(ctx context.Context, userID int64) (RatingSummary, error) {
	var s RatingSummary
	err := r.db.WithContext(ctx).Model(&models.Rate{}).
		Select("COALESCE(AVG(rates.value), 0) AS average, COUNT(*) AS count").
		Joins("JOIN jokes ON jokes.id = rates.joke_id").
		Where("jokes.user_id = ?", userID).
		Scan(&s).Error
	return s, err
}
