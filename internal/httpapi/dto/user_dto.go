package dto

import (
	"time"

	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"
)

// UserResponse: public view of a user (no credentials)
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  *string   `json:"username,omitempty"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func FromModelToUserResponse(u *models.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Name:      u.Name,
		CreatedAt: u.CreatedAt,
	}
}

func FromModelsToUserResponses(users []models.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, *FromModelToUserResponse(&users[i]))
	}
	return out
}

// UserStatsResponse: the statistics surface for a user profile
type UserStatsResponse struct {
	JokeCount     int64   `json:"joke_count"`
	AverageRating float64 `json:"average_rating"`
	TotalRatings  int64   `json:"total_ratings"`
	HasRatings    bool    `json:"has_ratings"`
}

// FollowRequest: payload for follow/unfollow
type FollowRequest struct {
	FollowerID int64 `json:"follower_id" binding:"required"`
	FolloweeID int64 `json:"followee_id" binding:"required"`
}

// CategoryAffinityResponse: a category ranked by association frequency
type CategoryAffinityResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Frequency   int64   `json:"frequency"`
}

func FromCategoryAffinities(list []repository.CategoryAffinity) []CategoryAffinityResponse {
	out := make([]CategoryAffinityResponse, 0, len(list))
	for _, a := range list {
		out = append(out, CategoryAffinityResponse{
			ID:          a.Category.ID,
			Name:        a.Category.Name,
			Description: a.Category.Description,
			Frequency:   a.Frequency,
		})
	}
	return out
}
