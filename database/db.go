package database

import (
	"fmt"
	"log/slog"

	"jokehub/internal/config"
	"jokehub/internal/httpapi/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDB opens the postgres connection and brings the schema up to date.
func ConnectDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logger.Info("connected to the database")
	return db, nil
}

// Migrate creates or updates the schema for all models. Order matters:
// referenced tables first.
func Migrate(db *gorm.DB) error {
	// use the explicit join model so affinity queries and the association
	// share one table definition
	if err := db.SetupJoinTable(&models.Joke{}, "Categories", &models.JokeCategory{}); err != nil {
		return err
	}
	return db.AutoMigrate(
		&models.Level{},
		&models.User{},
		&models.Category{},
		&models.Joke{},
		&models.JokeCategory{},
		&models.Rate{},
		&models.Report{},
		&models.Comment{},
		&models.Follow{},
		&models.RefreshToken{},
	)
}
