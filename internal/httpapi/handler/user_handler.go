package handler

import (
	"net/http"
	"strconv"

	"jokehub/internal/httpapi/dto"
	"jokehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService        service.UserService
	ratingService      service.RatingService
	leaderboardService service.LeaderboardService
	categoryService    service.CategoryService
	followService      service.FollowService
	feedService        service.FeedService
	jokeService        service.JokeService
}

func NewUserHandler(
	userService service.UserService,
	ratingService service.RatingService,
	leaderboardService service.LeaderboardService,
	categoryService service.CategoryService,
	followService service.FollowService,
	feedService service.FeedService,
	jokeService service.JokeService,
) *UserHandler {
	return &UserHandler{
		userService:        userService,
		ratingService:      ratingService,
		leaderboardService: leaderboardService,
		categoryService:    categoryService,
		followService:      followService,
		feedService:        feedService,
		jokeService:        jokeService,
	}
}

// RegisterRoutes registers the user-centric routes
func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("", h.List)
		users.GET("/search/:username", h.Search)
		users.GET("/:user_id", h.Get)
		users.GET("/:user_id/jokes", h.Jokes)
		users.GET("/:user_id/jokes/count", h.JokeCount)
		users.GET("/:user_id/rating", h.Rating)
		users.GET("/:user_id/top-jokes", h.TopJokes)
		users.GET("/:user_id/favorite-categories", h.FavoriteCategories)
		users.GET("/:user_id/feed", h.Feed)
		users.GET("/:user_id/followers", h.Followers)
		users.GET("/:user_id/followees", h.Followees)
	}
}

func parseID(c *gin.Context, param string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return 0, false
	}
	return id, true
}

func parseLimit(c *gin.Context, fallback int) int {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(fallback)))
	if err != nil || limit < 1 || limit > 100 {
		return fallback
	}
	return limit
}

// List returns all users
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.GetUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToUserResponses(users))
}

// Get returns one user
// GET /api/users/:user_id
func (h *UserHandler) Get(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelToUserResponse(user))
}

// Search performs a partial username match
// GET /api/users/search/:username
func (h *UserHandler) Search(c *gin.Context) {
	users, err := h.userService.SearchUsersByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToUserResponses(users))
}

// Jokes returns the user's jokes, newest first
// GET /api/users/:user_id/jokes
func (h *UserHandler) Jokes(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	jokes, err := h.jokeService.GetJokesByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToJokeResponses(jokes))
}

// JokeCount returns how many jokes the user has posted
// GET /api/users/:user_id/jokes/count
func (h *UserHandler) JokeCount(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	count, err := h.ratingService.CountJokesForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"joke_count": count})
}

// Rating returns the average rating received over all the user's jokes
// GET /api/users/:user_id/rating
func (h *UserHandler) Rating(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	summary, err := h.ratingService.AverageForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRatingSummary(summary))
}

// TopJokes returns the user's highest-rated jokes
// GET /api/users/:user_id/top-jokes?limit=10
func (h *UserHandler) TopJokes(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	list, err := h.leaderboardService.TopRatedForUser(c.Request.Context(), userID, parseLimit(c, service.DefaultTopLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromRankedJokes(list))
}

// FavoriteCategories returns categories ranked by the user's association
// GET /api/users/:user_id/favorite-categories
func (h *UserHandler) FavoriteCategories(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	list, err := h.categoryService.FavoriteCategories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCategoryAffinities(list))
}

// Feed returns the personalized home feed
// GET /api/users/:user_id/feed?limit=20
func (h *UserHandler) Feed(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	feed, err := h.feedService.HomeFeed(c.Request.Context(), userID, parseLimit(c, service.DefaultFeedLimit))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromFeedItems(feed))
}

// Followers returns users following this user
// GET /api/users/:user_id/followers
func (h *UserHandler) Followers(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	users, err := h.followService.Followers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToUserResponses(users))
}

// Followees returns users this user follows
// GET /api/users/:user_id/followees
func (h *UserHandler) Followees(c *gin.Context) {
	userID, ok := parseID(c, "user_id")
	if !ok {
		return
	}
	users, err := h.followService.Followees(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromModelsToUserResponses(users))
}
