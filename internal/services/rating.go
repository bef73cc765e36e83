package services

import (
	"fmt"

	"github.com/princeprakhar/movie-review-backend/internal/models"
	"github.com/princeprakhar/movie-review-backend/pkg/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// recomputeRatingSQL sets movies.rating to the rounded mean of the movie's
// reviews, or NULL when it has none.
const recomputeRatingSQL = `UPDATE movies SET rating = (
	SELECT ROUND(AVG(reviews.rating), 2) FROM reviews WHERE reviews.movie_id = movies.id
)`

// RatingAggregator keeps movies.rating in step with the review set.
type RatingAggregator struct{}

func NewRatingAggregator() *RatingAggregator {
	return &RatingAggregator{}
}

// Recompute rewrites the cached rating of one movie. It must run on the same
// transaction that inserted the review so both writes commit together. A
// missing movie affects zero rows and is not an error.
func (a *RatingAggregator) Recompute(tx *gorm.DB, movieID uint) error {
	res := tx.Exec(recomputeRatingSQL+" WHERE id = ?", movieID)
	if res.Error != nil {
		return fmt.Errorf("%w: failed to recompute rating for movie %d: %v", ErrDatabaseQuery, movieID, res.Error)
	}

	logger.WithFields(logrus.Fields{
		"movie_id": movieID,
		"rows":     res.RowsAffected,
	}).Debug("movie rating recomputed")
	return nil
}

// RecomputeAll rewrites the cached rating of every movie.
func (a *RatingAggregator) RecomputeAll(tx *gorm.DB) (int64, error) {
	res := tx.Exec(recomputeRatingSQL)
	if res.Error != nil {
		return 0, fmt.Errorf("%w: failed to recompute ratings: %v", ErrDatabaseQuery, res.Error)
	}
	return res.RowsAffected, nil
}

// lockMovie takes a row lock on the movie so concurrent review writes for it
// aggregate one after another.
func lockMovie(tx *gorm.DB, movieID uint) error {
	var row models.Movie
	return movieLockQuery(tx, movieID).Take(&row).Error
}

// movieLockQuery selects the movie id FOR UPDATE. SQLite serializes writers
// itself and has no FOR UPDATE.
func movieLockQuery(tx *gorm.DB, movieID uint) *gorm.DB {
	q := tx.Model(&models.Movie{}).Select("id").Where("id = ?", movieID)
	if tx.Dialector.Name() != "sqlite" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return q
}
