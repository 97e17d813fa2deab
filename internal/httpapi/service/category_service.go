package service

import (
	"context"
	"errors"

	"jokehub/internal/apperr"
	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"

	"gorm.io/gorm"
)

type CategoryService interface {
	GetCategories(ctx context.Context) ([]models.Category, error)
	FavoriteCategories(ctx context.Context, userID int64) ([]repository.CategoryAffinity, error)
	JokesForCategory(ctx context.Context, categoryID int64, limit int) ([]repository.RankedJoke, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	jokeRepo     repository.JokeRepository
	userRepo     repository.UserRepository
}

func NewCategoryService(categoryRepo repository.CategoryRepository, jokeRepo repository.JokeRepository, userRepo repository.UserRepository) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		jokeRepo:     jokeRepo,
		userRepo:     userRepo,
	}
}

func (s *categoryService) GetCategories(ctx context.Context) ([]models.Category, error) {
	list, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}

// FavoriteCategories derives the user's preferred categories from the jokes
// they posted and the jokes they rated highly, most-associated first. A user
// with no activity gets an empty list, never unrelated categories.
func (s *categoryService) FavoriteCategories(ctx context.Context, userID int64) ([]repository.CategoryAffinity, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Storage(err)
	}
	list, err := s.categoryRepo.FavoritesForUser(ctx, userID, HighRatingFloor)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}

// JokesForCategory lists the category's jokes ordered by average rating then
// recency; unrated jokes sort last.
func (s *categoryService) JokesForCategory(ctx context.Context, categoryID int64, limit int) ([]repository.RankedJoke, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("category")
		}
		return nil, apperr.Storage(err)
	}
	list, err := s.jokeRepo.RankedByCategories(ctx, []int64{categoryID}, limit)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return list, nil
}
