package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/movie-review-backend/internal/database"
	"github.com/princeprakhar/movie-review-backend/pkg/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db *gorm.DB
}

func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Health(c *gin.Context) {
	if err := database.Ping(c.Request.Context(), h.db); err != nil {
		logger.WithFields(logrus.Fields{"error": err}).Warn("health check: database unreachable")
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "degraded",
			"message":  "Database unavailable",
			"database": "down",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"message":  "Server is running",
		"database": "up",
	})
}
