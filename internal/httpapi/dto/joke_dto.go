package dto

import (
	"time"

	"jokehub/internal/httpapi/models"
	"jokehub/internal/httpapi/repository"
	"jokehub/internal/httpapi/service"
)

// CreateJokeRequest: payload for posting a joke
type CreateJokeRequest struct {
	Text        string  `json:"text" binding:"required,max=10000"`
	CategoryIDs []int64 `json:"category_ids"`
}

// ReportJokeRequest: payload for reporting a joke
type ReportJokeRequest struct {
	Reason string `json:"reason" binding:"required"`
}

// CreateCommentRequest: payload for commenting on a joke
type CreateCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// JokeResponse: a joke with its categories
type JokeResponse struct {
	ID         int64             `json:"id"`
	Text       string            `json:"text"`
	UserID     int64             `json:"user_id"`
	CreatedAt  time.Time         `json:"created_at"`
	Categories []models.Category `json:"categories,omitempty"`
}

// RankedJokeResponse: a joke with its rating aggregate, as returned by
// leaderboards and category listings
type RankedJokeResponse struct {
	JokeResponse
	AverageRating float64 `json:"average_rating"`
	RatingCount   int64   `json:"rating_count"`
}

// FeedItemResponse: one entry of a personalized feed
type FeedItemResponse struct {
	RankedJokeResponse
	Source string `json:"source"`
}

func FromModelToJokeResponse(j *models.Joke) *JokeResponse {
	return &JokeResponse{
		ID:         j.ID,
		Text:       j.Text,
		UserID:     j.UserID,
		CreatedAt:  j.CreatedAt,
		Categories: j.Categories,
	}
}

func FromModelsToJokeResponses(jokes []models.Joke) []JokeResponse {
	out := make([]JokeResponse, 0, len(jokes))
	for i := range jokes {
		out = append(out, *FromModelToJokeResponse(&jokes[i]))
	}
	return out
}

func FromRankedJoke(r *repository.RankedJoke) *RankedJokeResponse {
	return &RankedJokeResponse{
		JokeResponse:  *FromModelToJokeResponse(&r.Joke),
		AverageRating: r.AvgRating,
		RatingCount:   r.RatingCount,
	}
}

func FromRankedJokes(list []repository.RankedJoke) []RankedJokeResponse {
	out := make([]RankedJokeResponse, 0, len(list))
	for i := range list {
		out = append(out, *FromRankedJoke(&list[i]))
	}
	return out
}

func FromFeedItems(items []service.FeedItem) []FeedItemResponse {
	out := make([]FeedItemResponse, 0, len(items))
	for i := range items {
		out = append(out, FeedItemResponse{
			RankedJokeResponse: *FromRankedJoke(&items[i].RankedJoke),
			Source:             string(items[i].Source),
		})
	}
	return out
}
