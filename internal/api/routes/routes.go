package routes

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/movie-review-backend/internal/api/handlers"
	"github.com/princeprakhar/movie-review-backend/internal/api/middleware"
	"github.com/princeprakhar/movie-review-backend/internal/config"
	"github.com/princeprakhar/movie-review-backend/internal/services"
	"github.com/princeprakhar/movie-review-backend/internal/utils"
	"github.com/princeprakhar/movie-review-backend/pkg/logger"
	"gorm.io/gorm"
)

func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config) error {
	// Middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORSMiddleware(cfg.App.CORSOrigins))
	router.Use(middleware.RateLimitMiddleware(cfg.RateLimit))

	router.HandleMethodNotAllowed = true

	// Initialize services
	aggregator := services.NewRatingAggregator()
	movieService := services.NewMovieService(db)
	reviewService := services.NewReviewService(db, aggregator)
	adminService := services.NewAdminService(db, movieService, aggregator)

	verifier, err := services.NewStaticVerifier(cfg.Admin.Username, cfg.Admin.Password, cfg.Admin.PasswordHash)
	if err != nil {
		return err
	}
	authService := services.NewAuthService(verifier, cfg.Admin.JWTSecret, cfg.Admin.TokenTTL)

	var posters services.PosterStorage
	if cfg.S3.Enabled() {
		s3Storage, err := services.NewS3PosterStorage(cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to set up poster storage: %w", err)
		}
		posters = s3Storage
	}

	// Initialize handlers
	movieHandler := handlers.NewMovieHandler(movieService, reviewService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	adminHandler := handlers.NewAdminHandler(adminService, authService, posters)
	healthHandler := handlers.NewHealthHandler(db)

	adminGuard := []gin.HandlerFunc{middleware.AuthMiddleware(cfg.Admin.JWTSecret), middleware.AdminOnly()}

	// Catalog writes are admin-only unless the guard is switched off.
	guardedWrite := func(h gin.HandlerFunc) []gin.HandlerFunc {
		if !cfg.Admin.GuardWrites {
			return []gin.HandlerFunc{h}
		}
		return append(append([]gin.HandlerFunc{}, adminGuard...), h)
	}

	router.GET("/health", healthHandler.Health)

	api := router.Group("/api")

	movies := api.Group("/movies")
	{
		movies.GET("", movieHandler.ListMovies)
		movies.GET("/:id", movieHandler.GetMovie)
		movies.POST("", guardedWrite(movieHandler.CreateMovie)...)
		movies.DELETE("/:id", guardedWrite(movieHandler.DeleteMovie)...)
		movies.GET("/:id/reviews", movieHandler.ListReviews)
		movies.POST("/:id/reviews", movieHandler.CreateReview)
	}

	api.POST("/reviews", reviewHandler.CreateReview)

	api.POST("/admin/login", adminHandler.Login)

	admin := api.Group("/admin", adminGuard...)
	{
		admin.GET("/dashboard", adminHandler.GetDashboard)
		admin.POST("/maintenance/reconcile", adminHandler.Reconcile)
		admin.POST("/seed", adminHandler.SeedSampleMovies)
		admin.POST("/posters", adminHandler.UploadPoster)
	}

	router.NoRoute(func(c *gin.Context) {
		utils.SendNotFound(c, "Route not found")
	})
	router.NoMethod(func(c *gin.Context) {
		utils.SendError(c, http.StatusMethodNotAllowed, "Method not allowed")
	})

	logger.Info("Routes initialized successfully")
	return nil
}
