package handler

import (
	"net/http"

	"jokehub/internal/httpapi/dto"
	"jokehub/internal/httpapi/middleware"
	"jokehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type RatingHandler struct {
	ratingService service.RatingService
}

func NewRatingHandler(ratingService service.RatingService) *RatingHandler {
	return &RatingHandler{ratingService: ratingService}
}

// RegisterRoutes registers rating routes under /jokes
func (h *RatingHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	ratings := router.Group("/jokes/:joke_id/ratings")
	{
		ratings.GET("/average", h.GetAverage)
		ratings.POST("", authRequired, h.CreateOrUpdate)
	}
}

// CreateOrUpdate submits the caller's rating for a joke; rating the same joke
// again replaces the previous value
// POST /api/jokes/:joke_id/ratings
func (h *RatingHandler) CreateOrUpdate(c *gin.Context) {
	jokeID, ok := parseID(c, "joke_id")
	if !ok {
		return
	}
	userID, authed := middleware.CallerID(c)
	if !authed {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rate, err := h.ratingService.SubmitRating(c.Request.Context(), jokeID, userID, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToRatingResponse(rate))
}

// GetAverage returns the average rating and count for a joke
// GET /api/jokes/:joke_id/ratings/average
func (h *RatingHandler) GetAverage(c *gin.Context) {
	jokeID, ok := parseID(c, "joke_id")
	if !ok {
		return
	}
	summary, err := h.ratingService.AverageForJoke(c.Request.Context(), jokeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRatingSummary(summary))
}
