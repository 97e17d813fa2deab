// Package httpapi assembles the HTTP API: repositories, services, handlers
// and middleware, wired onto a gin engine.
package httpapi

import (
	"log/slog"

	"jokehub/internal/config"
	"jokehub/internal/httpapi/handler"
	"jokehub/internal/httpapi/middleware"
	"jokehub/internal/httpapi/repository"
	"jokehub/internal/httpapi/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// NewRouter builds the full API router on top of the given database handle.
func NewRouter(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// repositories
	userRepo := repository.NewUserRepository(db)
	jokeRepo := repository.NewJokeRepository(db)
	rateRepo := repository.NewRateRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	followRepo := repository.NewFollowRepository(db)
	reportRepo := repository.NewReportRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)

	// services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	userService := service.NewUserService(userRepo)
	ratingService := service.NewRatingService(rateRepo, jokeRepo, userRepo)
	leaderboardService := service.NewLeaderboardService(jokeRepo, userRepo)
	categoryService := service.NewCategoryService(categoryRepo, jokeRepo, userRepo)
	followService := service.NewFollowService(followRepo, userRepo)
	feedService := service.NewFeedService(jokeRepo, followRepo, categoryRepo, userRepo)
	jokeService := service.NewJokeService(jokeRepo, userRepo, categoryRepo, reportRepo, commentRepo)

	authRequired := middleware.AuthMiddleware(authService)

	api := r.Group("/api")
	{
		handler.NewAuthHandler(authService, int64(cfg.AccessTokenTTL.Seconds())).RegisterRoutes(api)
		handler.NewUserHandler(userService, ratingService, leaderboardService, categoryService, followService, feedService, jokeService).RegisterRoutes(api)
		handler.NewJokeHandler(jokeService, leaderboardService).RegisterRoutes(api, authRequired)
		handler.NewRatingHandler(ratingService).RegisterRoutes(api, authRequired)
		handler.NewCategoryHandler(categoryService).RegisterRoutes(api)
		handler.NewFollowHandler(followService).RegisterRoutes(api)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	logger.Info("router assembled", "routes", len(r.Routes()))
	return r
}
