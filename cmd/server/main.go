package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/princeprakhar/movie-review-backend/internal/api/routes"
	"github.com/princeprakhar/movie-review-backend/internal/config"
	"github.com/princeprakhar/movie-review-backend/internal/database"
	"github.com/princeprakhar/movie-review-backend/internal/services"
	"github.com/princeprakhar/movie-review-backend/pkg/logger"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.App.Environment, cfg.App.LogLevel)

	if err := cfg.Validate(); err != nil {
		logger.Fatal("Invalid configuration: ", err)
	}

	// Initialize database
	db, err := database.Init(cfg.DB)
	if err != nil {
		logger.Fatal("Failed to initialize database: ", err)
	}
	defer database.Close(db)

	if cfg.App.SeedSampleData {
		admin := services.NewAdminService(db, services.NewMovieService(db), nil)
		if _, err := admin.SeedIfEmpty(); err != nil {
			logger.Fatal("Failed to seed sample movies: ", err)
		}
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := routes.SetupRoutes(router, db, cfg); err != nil {
		logger.Fatal("Failed to set up routes: ", err)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"port":      cfg.App.Port,
			"db_driver": cfg.DB.Driver,
		}).Info("Server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown: ", err)
	}
}
