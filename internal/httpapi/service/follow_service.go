package service

import (
	"context"
	"errors"

	"jokehub/internal/apperr"
	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"

	"gorm.io/gorm"
)

type FollowService interface {
	Follow(ctx context.Context, followerID, followeeID int64) error
	Unfollow(ctx context.Context, followerID, followeeID int64) error
	Followers(ctx context.Context, userID int64) ([]models.User, error)
	Followees(ctx context.Context, userID int64) ([]models.User, error)
}

type followService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) FollowService {
	return &followService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

func (s *followService) userExists(ctx context.Context, id int64, role string) error {
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound(role)
		}
		return apperr.Storage(err)
	}
	return nil
}

// Follow creates the directed edge. Self-follows are rejected; following a
// user twice is an idempotent no-op, resolved by the unique edge index
// rather than surfacing as a conflict.
func (s *followService) Follow(ctx context.Context, followerID, followeeID int64) error {
	if followerID == followeeID {
		return apperr.Validation("followee_id", "users cannot follow themselves")
	}
	if err := s.userExists(ctx, followerID, "follower"); err != nil {
		return err
	}
	if err := s.userExists(ctx, followeeID, "followee"); err != nil {
		return err
	}
	edge := &models.Follow{FollowerID: followerID, FolloweeID: followeeID}
	if err := s.followRepo.Create(ctx, edge); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

// Unfollow removes the edge; removing an edge that was never there is a no-op.
func (s *followService) Unfollow(ctx context.Context, followerID, followeeID int64) error {
	if err := s.userExists(ctx, followerID, "follower"); err != nil {
		return err
	}
	if err := s.userExists(ctx, followeeID, "followee"); err != nil {
		return err
	}
	if err := s.followRepo.Delete(ctx, followerID, followeeID); err != nil {
		return apperr.Storage(err)
	}
	return nil
}

func (s *followService) Followers(ctx context.Context, userID int64) ([]models.User, error) {
	if err := s.userExists(ctx, userID, "user"); err != nil {
		return nil, err
	}
	ids, err := s.followRepo.FollowerIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return users, nil
}

func (s *followService) Followees(ctx context.Context, userID int64) ([]models.User, error) {
	if err := s.userExists(ctx, userID, "user"); err != nil {
		return nil, err
	}
	ids, err := s.followRepo.FolloweeIDs(ctx, userID)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	users, err := s.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return users, nil
}
