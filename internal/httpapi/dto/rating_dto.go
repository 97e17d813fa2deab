package dto

import (
	"time"

	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"
)

// CreateRatingRequest for creating or updating a rating
type CreateRatingRequest struct {
	Value int `json:"value" binding:"required,min=1,max=5"`
}

// RatingResponse for returning a stored rating
type RatingResponse struct {
	JokeID    int64     `json:"joke_id"`
	UserID    int64     `json:"user_id"`
	Value     int       `json:"value"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FromModelToRatingResponse converts a Rate model to RatingResponse DTO
func FromModelToRatingResponse(rate *models.Rate) *RatingResponse {
	return &RatingResponse{
		JokeID:    rate.JokeID,
		UserID:    rate.UserID,
		Value:     rate.Value,
		CreatedAt: rate.CreatedAt,
		UpdatedAt: rate.UpdatedAt,
	}
}

// RatingSummaryResponse for returning an average/count aggregate.
// HasRatings distinguishes a true zero-count from a low average.
type RatingSummaryResponse struct {
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
	HasRatings    bool    `json:"has_ratings"`
}

func FromRatingSummary(s repository.RatingSummary) *RatingSummaryResponse {
	return &RatingSummaryResponse{
		AverageRating: s.Average,
		TotalRatings:  s.Count,
		HasRatings:    s.Count > 0,
	}
}
