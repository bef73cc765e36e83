package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/movie-review-backend/internal/models"
	"github.com/princeprakhar/movie-review-backend/internal/services"
	"github.com/princeprakhar/movie-review-backend/internal/utils"
)

type ReviewHandler struct {
	reviewService *services.ReviewService
}

func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req models.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}

	review, err := h.reviewService.CreateReview(req)
	if err != nil {
		respondError(c, err, "Failed to create review")
		return
	}

	utils.SendCreated(c, review)
}
