package handler

import (
	"net/http"

	"jokehub/internal/httpapi/dto"
	"jokehub/internal/httpapi/middleware"
	"jokehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type JokeHandler struct {
	jokeService        service.JokeService
	leaderboardService service.LeaderboardService
}

func NewJokeHandler(jokeService service.JokeService, leaderboardService service.LeaderboardService) *JokeHandler {
	return &JokeHandler{
		jokeService:        jokeService,
		leaderboardService: leaderboardService,
	}
}

// RegisterRoutes registers joke routes. authRequired wraps the write paths.
func (h *JokeHandler) RegisterRoutes(router *gin.RouterGroup, authRequired gin.HandlerFunc) {
	jokes := router.Group("/jokes")
	{
		jokes.GET("/random", h.Random)
		jokes.GET("/top", h.Top)
		jokes.GET("/by-username/:username", h.ByUsername)
		jokes.GET("/:joke_id", h.Get)
		jokes.GET("/:joke_id/comments", h.Comments)

		jokes.POST("", authRequired, h.Create)
		jokes.POST("/:joke_id/reports", authRequired, h.Report)
		jokes.POST("/:joke_id/comments", authRequired, h.Comment)
	}
}

// Random returns n random jokes (default ten, matching the classic endpoint)
// GET /api/jokes/random?limit=10
func (h *JokeHandler) Random(c *gin.Context) {
	jokes, err := h.leaderboardService.RandomSample(c.Request.Context(), parseLimit(c, service.DefaultTopLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToJokeResponses(jokes))
}

// Top returns the leaderboard for a time window
// GET /api/jokes/top?window=all-time|year|month&limit=10
func (h *JokeHandler) Top(c *gin.Context) {
	window, err := service.ParseWindow(c.Query("window"))
	if err != nil {
		respondError(c, err)
		return
	}
	list, err := h.leaderboardService.TopRated(c.Request.Context(), window, parseLimit(c, service.DefaultTopLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRankedJokes(list))
}

// ByUsername returns a user's jokes addressed by username
// GET /api/jokes/by-username/:username
func (h *JokeHandler) ByUsername(c *gin.Context) {
	jokes, err := h.jokeService.GetJokesByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToJokeResponses(jokes))
}

// Get returns one joke with its categories
// GET /api/jokes/:joke_id
func (h *JokeHandler) Get(c *gin.Context) {
	jokeID, ok := parseID(c, "joke_id")
	if !ok {
		return
	}
	joke, err := h.jokeService.GetJoke(c.Request.Context(), jokeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToJokeResponse(joke))
}

// Create posts a joke for the authenticated user
// POST /api/jokes
func (h *JokeHandler) Create(c *gin.Context) {
	userID, ok := middleware.CallerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateJokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	joke, err := h.jokeService.PostJoke(c.Request.Context(), userID, req.Text, req.CategoryIDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromModelToJokeResponse(joke))
}

// Report flags a joke
// POST /api/jokes/:joke_id/reports
func (h *JokeHandler) Report(c *gin.Context) {
	jokeID, ok := parseID(c, "joke_id")
	if !ok {
		return
	}
	userID, authed := middleware.CallerID(c)
	if !authed {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.ReportJokeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.jokeService.ReportJoke(c.Request.Context(), jokeID, userID, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, report)
}

// Comment adds a comment to a joke
// POST /api/jokes/:joke_id/comments
func (h *JokeHandler) Comment(c *gin.Context) {
	jokeID, ok := parseID(c, "joke_id")
	if !ok {
		return
	}
	userID, authed := middleware.CallerID(c)
	if !authed {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := h.jokeService.CommentOnJoke(c.Request.Context(), jokeID, userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comment)
}

// Comments lists a joke's comments, newest first
// GET /api/jokes/:joke_id/comments
func (h *JokeHandler) Comments(c *gin.Context) {
	jokeID, ok := parseID(c, "joke_id")
	if !ok {
		return
	}
	comments, err := h.jokeService.GetComments(c.Request.Context(), jokeID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comments)
}
