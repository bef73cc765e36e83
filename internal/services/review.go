package services

import (
	"errors"
	"fmt"

	"github.com/princeprakhar/movie-review-backend/internal/models"
	"github.com/princeprakhar/movie-review-backend/internal/utils"
	"github.com/princeprakhar/movie-review-backend/pkg/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type ReviewService struct {
	db         *gorm.DB
	aggregator *RatingAggregator
}

func NewReviewService(db *gorm.DB, aggregator *RatingAggregator) *ReviewService {
	if db == nil {
		panic("services: NewReviewService requires a database handle")
	}
	if aggregator == nil {
		aggregator = NewRatingAggregator()
	}
	return &ReviewService{db: db, aggregator: aggregator}
}

// CreateReview stores the review and refreshes the movie's cached rating in
// one transaction. The movie row is locked first so concurrent reviews of the
// same movie cannot interleave their recomputation.
func (s *ReviewService) CreateReview(req models.CreateReviewRequest) (*models.Review, error) {
	req.ReviewerName = utils.SanitizeString(req.ReviewerName)
	req.Comment = utils.SanitizeString(req.Comment)

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	review := models.Review{
		MovieID:      req.MovieID,
		ReviewerName: req.ReviewerName,
		Rating:       req.Rating,
		Comment:      req.Comment,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := lockMovie(tx, req.MovieID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrMovieNotFound
			}
			return fmt.Errorf("%w: failed to lock movie %d: %v", ErrDatabaseQuery, req.MovieID, err)
		}

		if err := tx.Create(&review).Error; err != nil {
			return fmt.Errorf("%w: failed to create review: %v", ErrDatabaseQuery, err)
		}

		return s.aggregator.Recompute(tx, req.MovieID)
	})
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"review_id": review.ID,
		"movie_id":  review.MovieID,
		"rating":    review.Rating,
	}).Info("review created")

	return &review, nil
}

// ListReviewsForMovie returns the movie's reviews, newest first.
func (s *ReviewService) ListReviewsForMovie(movieID uint) ([]models.Review, error) {
	var count int64
	if err := s.db.Model(&models.Movie{}).Where("id = ?", movieID).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to fetch movie %d: %v", ErrDatabaseQuery, movieID, err)
	}
	if count == 0 {
		return nil, ErrMovieNotFound
	}

	reviews := []models.Review{}
	if err := s.db.Where("movie_id = ?", movieID).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to list reviews: %v", ErrDatabaseQuery, err)
	}
	return reviews, nil
}
