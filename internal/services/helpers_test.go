package services

import (
	"testing"

	"github.com/princeprakhar/movie-review-backend/internal/config"
	"github.com/princeprakhar/movie-review-backend/internal/database"
	"github.com/princeprakhar/movie-review-backend/internal/models"
	"gorm.io/gorm"
)

// newTestDB opens a migrated in-memory SQLite database. A single connection
// keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Init(config.DBConfig{
		Driver:       "sqlite",
		URL:          ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.Close(db) })
	return db
}

type testServices struct {
	db      *gorm.DB
	movies  *MovieService
	reviews *ReviewService
	admin   *AdminService
}

func newTestServices(t *testing.T) *testServices {
	t.Helper()
	db := newTestDB(t)
	agg := NewRatingAggregator()
	movies := NewMovieService(db)
	return &testServices{
		db:      db,
		movies:  movies,
		reviews: NewReviewService(db, agg),
		admin:   NewAdminService(db, movies, agg),
	}
}

func movieRequest(title string) models.CreateMovieRequest {
	return models.CreateMovieRequest{
		Title:       title,
		Description: "A film used in tests.",
		ReleaseYear: 2020,
		Director:    "D",
		Genre:       "G",
		Duration:    100,
	}
}

func mustCreateMovie(t *testing.T, s *MovieService, title string) *models.Movie {
	t.Helper()
	movie, err := s.CreateMovie(movieRequest(title))
	if err != nil {
		t.Fatalf("CreateMovie(%q) error = %v", title, err)
	}
	return movie
}

func mustCreateReview(t *testing.T, s *ReviewService, movieID uint, rating int) *models.Review {
	t.Helper()
	review, err := s.CreateReview(models.CreateReviewRequest{
		MovieID:      movieID,
		ReviewerName: "A",
		Rating:       rating,
		Comment:      "ok",
	})
	if err != nil {
		t.Fatalf("CreateReview(movie=%d, rating=%d) error = %v", movieID, rating, err)
	}
	return review
}

func findSummary(movies []models.MovieSummary, id uint) (models.MovieSummary, bool) {
	for _, m := range movies {
		if m.ID == id {
			return m, true
		}
	}
	return models.MovieSummary{}, false
}
