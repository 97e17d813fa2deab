package repository

import (
	"context"
	"fmt"

	"jokehub/internal/httpapi/models"

	"gorm.io/gorm"
)

type ReportRepository interface {
	Create(ctx context.Context, report *models.Report) error
	GetByJoke(ctx context.Context, jokeID int64) ([]models.Report, error)
}

type reportRepository struct {
	db *gorm.DB
}

func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

func (r *reportRepository) Create(ctx context.Context, report *models.Report) error {
	if err := r.db.WithContext(ctx).Create(report).Error; err != nil {
		return fmt.Errorf("create report: %w", err)
	}
	return nil
}

func (r *reportRepository) GetByJoke(ctx context.Context, jokeID int64) ([]models.Report, error) {
	var list []models.Report
	err := r.db.WithContext(ctx).
		Where("joke_id = ?", jokeID).
		Order("created_at DESC").
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("get reports by joke: %w", err)
	}
	return list, nil
}
