package services

import (
	"fmt"

	"github.com/princeprakhar/movie-review-backend/internal/models"
	"github.com/princeprakhar/movie-review-backend/pkg/catalog"
	"github.com/princeprakhar/movie-review-backend/pkg/logger"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	deleteOrphansSQL = `DELETE FROM reviews WHERE movie_id NOT IN (SELECT id FROM movies)`
	countOrphansSQL  = `SELECT COUNT(*) FROM reviews r LEFT JOIN movies m ON m.id = r.movie_id WHERE m.id IS NULL`
)

type AdminService struct {
	db         *gorm.DB
	movies     *MovieService
	aggregator *RatingAggregator
}

func NewAdminService(db *gorm.DB, movies *MovieService, aggregator *RatingAggregator) *AdminService {
	if aggregator == nil {
		aggregator = NewRatingAggregator()
	}
	return &AdminService{
		db:         db,
		movies:     movies,
		aggregator: aggregator,
	}
}

// Dashboard summarizes the catalog. AverageRating is the mean of the per-movie
// averages, movies without reviews counting as 0.
func (s *AdminService) Dashboard() (*models.DashboardStats, error) {
	movies, err := s.movies.ListMovies()
	if err != nil {
		return nil, err
	}

	stats := CatalogStats(movies)

	if err := s.db.Raw(countOrphansSQL).Scan(&stats.OrphanedReviews).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to count orphaned reviews: %v", ErrDatabaseQuery, err)
	}

	return &stats, nil
}

// CatalogStats computes dashboard figures from already loaded summaries.
func CatalogStats(movies []models.MovieSummary) models.DashboardStats {
	entries := make([]catalog.Entry, len(movies))
	for i, m := range movies {
		entries[i] = catalog.Entry{Genre: m.Genre, AverageRating: m.AverageRating, ReviewCount: m.ReviewCount}
	}

	sum := catalog.Summarize(entries)
	return models.DashboardStats{
		TotalMovies:   sum.Movies,
		TotalReviews:  sum.Reviews,
		AverageRating: sum.AverageRating,
		GenreCount:    len(sum.Genres),
	}
}

// Reconcile drops orphaned reviews and rewrites every cached rating.
func (s *AdminService) Reconcile() (*models.ReconcileResult, error) {
	var result models.ReconcileResult

	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Exec(deleteOrphansSQL)
		if res.Error != nil {
			return fmt.Errorf("%w: failed to delete orphaned reviews: %v", ErrDatabaseQuery, res.Error)
		}
		result.OrphansRemoved = res.RowsAffected

		updated, err := s.aggregator.RecomputeAll(tx)
		if err != nil {
			return err
		}
		result.MoviesUpdated = updated
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"orphans_removed": result.OrphansRemoved,
		"movies_updated":  result.MoviesUpdated,
	}).Info("catalog reconciled")

	return &result, nil
}

// SeedSampleMovies inserts the sample catalog, skipping titles already present.
func (s *AdminService) SeedSampleMovies() (*models.SeedResult, error) {
	result := &models.SeedResult{Created: []models.Movie{}}

	for _, req := range SampleMovies() {
		var count int64
		if err := s.db.Model(&models.Movie{}).Where("title = ?", req.Title).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("%w: failed to check sample movie: %v", ErrDatabaseQuery, err)
		}
		if count > 0 {
			result.Skipped++
			continue
		}

		movie, err := s.movies.CreateMovie(req)
		if err != nil {
			return nil, err
		}
		result.Created = append(result.Created, *movie)
	}

	logger.WithFields(logrus.Fields{
		"created": len(result.Created),
		"skipped": result.Skipped,
	}).Info("sample catalog seeded")

	return result, nil
}

// SeedIfEmpty seeds only when the catalog has no movies at all.
func (s *AdminService) SeedIfEmpty() (*models.SeedResult, error) {
	var count int64
	if err := s.db.Model(&models.Movie{}).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to count movies: %v", ErrDatabaseQuery, err)
	}
	if count > 0 {
		return &models.SeedResult{Created: []models.Movie{}}, nil
	}
	return s.SeedSampleMovies()
}
