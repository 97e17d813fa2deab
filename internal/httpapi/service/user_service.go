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

type UserService interface {
	GetUsers(ctx context.Context) ([]models.User, error)
	GetUser(ctx context.Context, userID int64) (*models.User, error)
	SearchUsersByUsername(ctx context.Context, fragment string) ([]models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

func (s *userService) GetUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return users, nil
}

func (s *userService) GetUser(ctx context.Context, userID int64) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user")
		}
		return nil, apperr.Storage(err)
	}
	return user, nil
}

func (s *userService) SearchUsersByUsername(ctx context.Context, fragment string) ([]models.User, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, apperr.Validation("username", "search fragment must not be empty")
	}
	users, err := s.userRepo.SearchByUsername(ctx, fragment)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return users, nil
}
