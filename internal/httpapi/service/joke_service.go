package service

import (
	"context"
	"errors"
	"strings"

	"jokehub/internal/apperr"
	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"

	"gorm.io/gorm"
)

// MaxJokeLength mirrors the column bound on jokes.text.
const MaxJokeLength = 10000

type JokeService interface {
	PostJoke(ctx context.Context, userID int64, text string, categoryIDs []int64) (*models.Joke, error)
	GetJoke(ctx context.Context, jokeID int64) (*models.Joke, error)
	GetJokesByUser(ctx context.Context, userID int64) ([]models.Joke, error)
	GetJokesByUsername(ctx context.Context, username string) ([]models.Joke, error)
	ReportJoke(ctx context.Context, jokeID, userID int64, reason string) (*models.Report, error)
	CommentOnJoke(ctx context.Context, jokeID, userID int64, content string) (*models.Comment, error)
	GetComments(ctx context.Context, jokeID int64) ([]models.Comment, error)
}

type jokeService struct {
	jokeRepo     repository.JokeRepository
	userRepo     repository.UserRepository
	categoryRepo repository.CategoryRepository
	reportRepo   repository.ReportRepository
	commentRepo  repository.CommentRepository
}

func NewJokeService(
	jokeRepo repository.JokeRepository,
	userRepo repository.UserRepository,
	categoryRepo repository.CategoryRepository,
	reportRepo repository.ReportRepository,
	commentRepo repository.CommentRepository,
) JokeService {
	return &jokeService{
		jokeRepo:     jokeRepo,
		userRepo:     userRepo,
		categoryRepo: categoryRepo,
		reportRepo:   reportRepo,
		commentRepo:  commentRepo,
	}
}

func (s *jokeService) PostJoke(ctx context.Context, userID int64, text string, categoryIDs []int64) (*models.Joke, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, apperr.Validation("text", "joke text must not be empty")
	}
	if len(text) > MaxJokeLength {
		return nil, apperr.Validation("text", "joke text too long")
	}

	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Storage(err)
	}

	categories, err := s.categoryRepo.FindByIDs(ctx, categoryIDs)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if len(categories) != len(categoryIDs) {
		return nil, apperr.NotFound("category")
	}

	joke := &models.Joke{
		Text:       text,
		UserID:     userID,
		Categories: categories,
	}
	if err := s.jokeRepo.Create(ctx, joke); err != nil {
		return nil, apperr.Storage(err)
	}
	return joke, nil
}

func (s *jokeService) GetJoke(ctx context.Context, jokeID int64) (*models.Joke, error) {
	joke, err := s.jokeRepo.GetByID(ctx, jokeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("joke")
		}
		return nil, apperr.Storage(err)
	}
	return joke, nil
}

func (s *jokeService) GetJokesByUser(ctx context.Context, userID int64) ([]models.Joke, error) {
	if _, err := s.userRepo.FindByID(ctx, userID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Storage(err)
	}
	jokes, err := s.jokeRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return jokes, nil
}

func (s *jokeService) GetJokesByUsername(ctx context.Context, username string) ([]models.Joke, error) {
	if _, err := s.userRepo.FindByUsername(ctx, username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Storage(err)
	}
	jokes, err := s.jokeRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return jokes, nil
}

func (s *jokeService) ReportJoke(ctx context.Context, jokeID, userID int64, reason string) (*models.Report, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, apperr.Validation("reason", "report reason must not be empty")
	}
	if _, err := s.jokeRepo.GetByID(ctx, jokeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("joke")
		}
		return nil, apperr.Storage(err)
	}
	report := &models.Report{JokeID: jokeID, UserID: userID, Reason: reason}
	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, apperr.Storage(err)
	}
	return report, nil
}

func (s *jokeService) CommentOnJoke(ctx context.Context, jokeID, userID int64, content string) (*models.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperr.Validation("content", "comment must not be empty")
	}
	if _, err := s.jokeRepo.GetByID(ctx, jokeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("joke")
		}
		return nil, apperr.Storage(err)
	}
	comment := &models.Comment{JokeID: jokeID, UserID: userID, Content: content}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, apperr.Storage(err)
	}
	return comment, nil
}

func (s *jokeService) GetComments(ctx context.Context, jokeID int64) ([]models.Comment, error) {
	if _, err := s.jokeRepo.GetByID(ctx, jokeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("joke")
		}
		return nil, apperr.Storage(err)
	}
	comments, err := s.commentRepo.GetByJoke(ctx, jokeID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return comments, nil
}
