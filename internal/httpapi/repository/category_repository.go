package repository

import (
	"context"
	"fmt"

	"jokehub/internal/httpapi/models"

	"gorm.io/gorm"
)

// CategoryAffinity is a category together with how often it is associated
// with a user's activity.
type CategoryAffinity struct {
	models.Category `gorm:"embedded"`
	Frequency       int64 `gorm:"column:frequency" json:"frequency"`
}

type CategoryRepository interface {
	GetAll(ctx context.Context) ([]models.Category, error)
	GetByID(ctx context.Context, id int64) (*models.Category, error)
	FindByIDs(ctx context.Context, ids []int64) ([]models.Category, error)
	FavoritesForUser(ctx context.Context, userID int64, highRatingFloor int) ([]CategoryAffinity, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) GetAll(ctx context.Context) ([]models.Category, error) {
	var list []models.Category
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get categories: %w", err)
	}
	return list, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*models.Category, error) {
	var c models.Category
	if err := r.db.WithContext(ctx).First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepository) FindByIDs(ctx context.Context, ids []int64) ([]models.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var list []models.Category
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get categories by ids: %w", err)
	}
	return list, nil
}

// FavoritesForUser ranks categories by how often they tag a joke the user
// either posted or rated at or above highRatingFloor. Ties break on category
// id ascending so the ranking is stable.
func (r *categoryRepository) FavoritesForUser(ctx context.Context, userID int64, highRatingFloor int) ([]CategoryAffinity, error) {
	var list []CategoryAffinity
	err := r.db.WithContext(ctx).Raw(`
		SELECT categories.*, COUNT(*) AS frequency
		FROM categories
		JOIN joke_categories jc ON jc.category_id = categories.id
		JOIN jokes ON jokes.id = jc.joke_id
		LEFT JOIN rates ON rates.joke_id = jokes.id
			AND rates.user_id = ? AND rates.value >= ?
		WHERE jokes.user_id = ? OR rates.id IS NOT NULL
		GROUP BY categories.id, categories.name, categories.description
		ORDER BY frequency DESC, categories.id ASC`,
		userID, highRatingFloor, userID,
	).Scan(&list).Error
	if err != nil {
		return nil, fmt.Errorf("favorite categories: %w", err)
	}
	return list, nil
}
