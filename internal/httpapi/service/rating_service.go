package service

import (
	"context"
	"errors"
	"fmt"

	"jokehub/internal/apperr"
	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"

	"gorm.io/gorm"
)

// Accepted rating bounds. Values outside the range never reach an aggregate:
// submission rejects them up front, and the check constraint on the rates
// table backstops anything that slips past the service.
const (
	RatingMin = 1
	RatingMax = 5

	// HighRatingFloor is the value from which a rating counts as a positive
	// affinity signal.
	HighRatingFloor = 4
)

type RatingService interface {
	SubmitRating(ctx context.Context, jokeID, userID int64, value int) (*models.Rate, error)
	AverageForJoke(ctx context.Context, jokeID int64) (repository.RatingSummary, error)
	AverageForUser(ctx context.Context, userID int64) (repository.RatingSummary, error)
	CountJokesForUser(ctx context.Context, userID int64) (int64, error)
}

type ratingService struct {
	rateRepo repository.RateRepository
	jokeRepo repository.JokeRepository
	userRepo repository.UserRepository
}

func NewRatingService(rateRepo repository.RateRepository, jokeRepo repository.JokeRepository, userRepo repository.UserRepository) RatingService {
	return &ratingService{
		rateRepo: rateRepo,
		jokeRepo: jokeRepo,
		userRepo: userRepo,
	}
}

// SubmitRating validates the value, checks the joke exists, and upserts: a
// second rating by the same user for the same joke replaces the first. The
// stored row after the call always holds the latest value.
func (s *ratingService) SubmitRating(ctx context.Context, jokeID, userID int64, value int) (*models.Rate, error) {
	if value < RatingMin || value > RatingMax {
		return nil, apperr.Validation("value", fmt.Sprintf("rating must be between %d and %d", RatingMin, RatingMax))
	}

	if _, err := s.jokeRepo.GetByID(ctx, jokeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("joke")
		}
		return nil, apperr.Storage(err)
	}

	rate := &models.Rate{JokeID: jokeID, UserID: userID, Value: value}
	if err := s.rateRepo.Upsert(ctx, rate); err != nil {
		return nil, apperr.Storage(err)
	}

	// Reload so callers see the canonical row, whichever side of the upsert ran.
	stored, err := s.rateRepo.GetByJokeAndUser(ctx, jokeID, userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return stored, nil
}

// AverageForJoke returns the mean and count over a joke's ratings.
// Count == 0 is the "no ratings" result; the average is not meaningful then.
func (s *ratingService) AverageForJoke(ctx context.Context, jokeID int64) (repository.RatingSummary, error) {
	if _, err := s.jokeRepo.GetByID(ctx, jokeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.RatingSummary{}, apperr.NotFound("joke")
		}
		return repository.RatingSummary{}, apperr.Storage(err)
	}
	summary, err := s.rateRepo.SummaryForJoke(ctx, jokeID)
	if err != nil {
		return repository.RatingSummary{}, apperr.Storage(err)
	}
	return summary, nil
}

// AverageForUser aggregates ratings received across all jokes the user authored.
func (s *ratingService) AverageForUser(ctx context.Context, userID int64) (repository.RatingSummary, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return repository.RatingSummary{}, apperr.NotFound("user")
		}
		return repository.RatingSummary{}, apperr.Storage(err)
	}
	summary, err := s.rateRepo.SummaryForUser(ctx, userID)
	if err != nil {
		return repository.RatingSummary{}, apperr.Storage(err)
	}
	return summary, nil
}

func (s *ratingService) CountJokesForUser(ctx context.Context, userID int64) (int64, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperr.NotFound("user")
		}
		return 0, apperr.Storage(err)
	}
	count, err := s.jokeRepo.CountByUser(ctx, userID)
	if err != nil {
		return 0, apperr.Storage(err)
	}
	return count, nil
}
