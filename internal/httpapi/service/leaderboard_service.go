package service

import (
	"context"
	"errors"
	"time"

	"jokehub/internal/apperr"
	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"

	"gorm.io/gorm"
)

// Window bounds a leaderboard to a calendar period.
type Window string

const (
	WindowAllTime Window = "all-time"
	WindowYear    Window = "year"
	WindowMonth   Window = "month"
)

// DefaultTopLimit matches the classic "top ten" endpoints.
const DefaultTopLimit = 10

// ParseWindow maps a query-string value onto a Window.
func ParseWindow(s string) (Window, error) {
	switch Window(s) {
	case WindowAllTime, "":
		return WindowAllTime, nil
	case WindowYear:
		return WindowYear, nil
	case WindowMonth:
		return WindowMonth, nil
	}
	return "", apperr.Validation("window", "must be one of all-time, year, month")
}

type LeaderboardService interface {
	TopRated(ctx context.Context, window Window, limit int) ([]repository.RankedJoke, error)
	TopRatedForUser(ctx context.Context, userID int64, limit int) ([]repository.RankedJoke, error)
	RandomSample(ctx context.Context, n int) ([]models.Joke, error)
}

type leaderboardService struct {
	jokeRepo repository.JokeRepository
	userRepo repository.UserRepository
	now      func() time.Time
}

func NewLeaderboardService(jokeRepo repository.JokeRepository, userRepo repository.UserRepository) LeaderboardService {
	return &leaderboardService{
		jokeRepo: jokeRepo,
		userRepo: userRepo,
		now:      time.Now,
	}
}

// windowStart returns the inclusive lower bound for the window, or nil for
// the unbounded all-time window.
func (s *leaderboardService) windowStart(w Window) *time.Time {
	now := s.now()
	switch w {
	case WindowYear:
		start := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		return &start
	case WindowMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &start
	}
	return nil
}

// TopRated returns the limit highest-rated jokes created within the window.
// Jokes with no ratings never appear; ties resolve by rating count then
// recency, both descending.
func (s *leaderboardService) TopRated(ctx context.Context, window Window, limit int) ([]repository.RankedJoke, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	list, err := s.jokeRepo.TopRated(ctx, s.windowStart(window), limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}

// TopRatedForUser applies the same ranking restricted to one author's jokes.
func (s *leaderboardService) TopRatedForUser(ctx context.Context, userID int64, limit int) ([]repository.RankedJoke, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Storage(err)
	}
	list, err := s.jokeRepo.TopRatedByAuthor(ctx, userID, limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}

// RandomSample draws n jokes at random for cold-start and discovery feeds.
// Returns fewer than n when the corpus is smaller.
func (s *leaderboardService) RandomSample(ctx context.Context, n int) ([]models.Joke, error) {
	if n <= 0 {
		n = DefaultTopLimit
	}
	list, err := s.jokeRepo.Random(ctx, n)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}
