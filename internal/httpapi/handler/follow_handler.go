package handler

import (
	"net/http"

	"jokehub/internal/httpapi/dto"
	"jokehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type FollowHandler struct {
	followService service.FollowService
}

func NewFollowHandler(followService service.FollowService) *FollowHandler {
	return &FollowHandler{followService: followService}
}

// RegisterRoutes registers follow-edge routes
func (h *FollowHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/follows", h.Follow)
	router.DELETE("/follows", h.Unfollow)
}

// Follow creates a follow edge; following twice is a no-op
// POST /api/follows
func (h *FollowHandler) Follow(c *gin.Context) {
	var req dto.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.followService.Follow(c.Request.Context(), req.FollowerID, req.FolloweeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "followed"})
}

// Unfollow removes a follow edge; removing a missing edge is a no-op
// DELETE /api/follows
func (h *FollowHandler) Unfollow(c *gin.Context) {
	var req dto.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.followService.Unfollow(c.Request.Context(), req.FollowerID, req.FolloweeID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "unfollowed"})
}
