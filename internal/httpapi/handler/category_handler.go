package handler

import (
	"net/http"

	"jokehub/internal/httpapi/dto"
	"jokehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	categoryService service.CategoryService
}

func NewCategoryHandler(categoryService service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// RegisterRoutes registers category routes
func (h *CategoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/:category_id/jokes", h.Jokes)
	}
}

// List returns all categories, name ascending
// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	list, err := h.categoryService.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

// Jokes returns a category's jokes, best rated first
// GET /api/categories/:category_id/jokes?limit=10
func (h *CategoryHandler) Jokes(c *gin.Context) {
	categoryID, ok := parseID(c, "category_id")
	if !ok {
		return
	}
	list, err := h.categoryService.JokesForCategory(c.Request.Context(), categoryID, parseLimit(c, service.DefaultTopLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRankedJokes(list))
}
