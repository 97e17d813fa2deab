package repository

import (
	"context"
	"fmt"

	"jokehub/internal/httpapi/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepository interface {
	Create(ctx context.Context, edge *models.Follow) error
	Delete(ctx context.Context, followerID, followeeID int64) error
	FollowerIDs(ctx context.Context, userID int64) ([]int64, error)
	FolloweeIDs(ctx context.Context, userID int64) ([]int64, error)
	Exists(ctx context.Context, followerID, followeeID int64) (bool, error)
}

type followRepository struct {
	db *gorm.DB
}

func NewFollowRepository(db *gorm.DB) FollowRepository {
	return &followRepository{db: db}
}

// Create inserts the edge; an already-existing edge is absorbed silently via
// the unique (follower_id, followee_id) index, making follow idempotent even
// under concurrent requests.
func (r *followRepository) Create(ctx context.Context, edge *models.Follow) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "follower_id"}, {Name: "followee_id"}},
		DoNothing: true,
	}).Create(edge).Error
	if err != nil {
		return fmt.Errorf("create follow edge: %w", err)
	}
	return nil
}

// Delete removes the edge; removing an edge that does not exist is a no-op.
func (r *followRepository) Delete(ctx context.Context, followerID, followeeID int64) error {
	err := r.db.WithContext(ctx).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{}).Error
	if err != nil {
		return fmt.Errorf("delete follow edge: %w", err)
	}
	return nil
}

func (r *followRepository) FollowerIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("followee_id = ?", userID).
		Order("follower_id ASC").
		Pluck("follower_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("follower ids: %w", err)
	}
	return ids, nil
}

func (r *followRepository) FolloweeIDs(ctx context.Context, userID int64) ([]int64, error) {
	var ids []int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ?", userID).
		Order("followee_id ASC").
		Pluck("followee_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("followee ids: %w", err)
	}
	return ids, nil
}

func (r *followRepository) Exists(ctx context.Context, followerID, followeeID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}
