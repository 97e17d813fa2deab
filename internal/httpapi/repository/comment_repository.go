package repository

import (
	"context"
	"fmt"

	"jokehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByJoke(ctx context.Context, jokeID int64) ([]models.Comment, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) GetByJoke(ctx context.Context, jokeID int64) ([]models.Comment, error) {
	var list []models.Comment
	err := r.db.WithContext(ctx).
		Where("joke_id = ?", jokeID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("get comments by joke: %w", err)
	}
	return list, nil
}
