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

const summaryColumns = "m.*, COALESCE(ROUND(AVG(r.rating), 2), 0) AS average_rating, COUNT(r.id) AS review_count"

type MovieService struct {
	db *gorm.DB
}

func NewMovieService(db *gorm.DB) *MovieService {
	if db == nil {
		panic("services: NewMovieService requires a database handle")
	}
	return &MovieService{db: db}
}

// summaries selects movies joined with their review statistics.
func (s *MovieService) summaries(db *gorm.DB) *gorm.DB {
	return db.Table("movies AS m").
		Select(summaryColumns).
		Joins("LEFT JOIN reviews r ON r.movie_id = m.id").
		Group("m.id")
}

func (s *MovieService) CreateMovie(req models.CreateMovieRequest) (*models.Movie, error) {
	req.Title = utils.SanitizeString(req.Title)
	req.Description = utils.SanitizeString(req.Description)
	req.Director = utils.SanitizeString(req.Director)
	req.Genre = utils.SanitizeString(req.Genre)
	req.PosterURL = utils.SanitizeString(req.PosterURL)

	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	movie := models.Movie{
		Title:       req.Title,
		Description: req.Description,
		ReleaseYear: req.ReleaseYear,
		Director:    req.Director,
		Genre:       req.Genre,
		Duration:    req.Duration,
		PosterURL:   req.PosterURL,
	}

	if err := s.db.Create(&movie).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to create movie: %v", ErrDatabaseQuery, err)
	}

	logger.WithFields(logrus.Fields{
		"movie_id": movie.ID,
		"title":    movie.Title,
	}).Info("movie created")

	return &movie, nil
}

// GetMovie returns a single movie row with its stored rating.
func (s *MovieService) GetMovie(id uint) (*models.Movie, error) {
	var movie models.Movie
	if err := s.db.First(&movie, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, fmt.Errorf("%w: failed to fetch movie %d: %v", ErrDatabaseQuery, id, err)
	}
	return &movie, nil
}

// ListMovies returns every movie with computed statistics, newest first.
func (s *MovieService) ListMovies() ([]models.MovieSummary, error) {
	movies := []models.MovieSummary{}
	err := s.summaries(s.db).
		Order("m.created_at DESC, m.id DESC").
		Scan(&movies).Error
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list movies: %v", ErrDatabaseQuery, err)
	}
	return movies, nil
}

func (s *MovieService) getSummary(db *gorm.DB, id uint) (*models.MovieSummary, error) {
	var rows []models.MovieSummary
	if err := s.summaries(db).Where("m.id = ?", id).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to fetch movie %d: %v", ErrDatabaseQuery, id, err)
	}
	if len(rows) == 0 {
		return nil, ErrMovieNotFound
	}
	return &rows[0], nil
}

// GetMovieDetail returns the movie, its statistics and its reviews, newest first.
func (s *MovieService) GetMovieDetail(id uint) (*models.MovieDetail, error) {
	summary, err := s.getSummary(s.db, id)
	if err != nil {
		return nil, err
	}

	reviews := []models.Review{}
	if err := s.db.Where("movie_id = ?", id).
		Order("created_at DESC, id DESC").
		Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("%w: failed to fetch reviews for movie %d: %v", ErrDatabaseQuery, id, err)
	}

	return &models.MovieDetail{Movie: *summary, Reviews: reviews}, nil
}

// DeleteMovie removes a movie together with its reviews.
func (s *MovieService) DeleteMovie(id uint) error {
	var removed int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("movie_id = ?", id).Delete(&models.Review{})
		if res.Error != nil {
			return fmt.Errorf("%w: failed to delete reviews: %v", ErrDatabaseQuery, res.Error)
		}
		removed = res.RowsAffected

		res = tx.Delete(&models.Movie{}, id)
		if res.Error != nil {
			return fmt.Errorf("%w: failed to delete movie: %v", ErrDatabaseQuery, res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrMovieNotFound
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.WithFields(logrus.Fields{
		"movie_id":        id,
		"reviews_removed": removed,
	}).Info("movie deleted")
	return nil
}
