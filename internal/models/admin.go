package models

import "time"

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

type DashboardStats struct {
	TotalMovies     int64   `json:"total_movies"`
	TotalReviews    int64   `json:"total_reviews"`
	AverageRating   float64 `json:"average_rating"`
	GenreCount      int     `json:"genre_count"`
	OrphanedReviews int64   `json:"orphaned_reviews"`
}

type ReconcileResult struct {
	OrphansRemoved int64 `json:"orphans_removed"`
	MoviesUpdated  int64 `json:"movies_updated"`
}

type SeedResult struct {
	Created []Movie `json:"created"`
	Skipped int     `json:"skipped"`
}

type PosterUploadResponse struct {
	PosterURL string `json:"poster_url"`
}
