package models

import (
	"time"
)

// Movie is a catalog entry. Rating is a cache of the mean review rating and
// stays nil until the first review is written.
type Movie struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"size:255;not null"`
	Description string    `json:"description" gorm:"type:text;not null"`
	ReleaseYear int       `json:"release_year" gorm:"not null;check:chk_movies_release_year,release_year >= 1900"`
	Director    string    `json:"director" gorm:"size:255;not null"`
	Genre       string    `json:"genre" gorm:"size:255;not null"`
	Duration    int       `json:"duration" gorm:"not null;check:chk_movies_duration,duration >= 1"`
	PosterURL   string    `json:"poster_url" gorm:"size:1024"`
	Rating      *float64  `json:"rating"`
	CreatedAt   time.Time `json:"created_at" gorm:"index"`
}

// MovieSummary is a movie row with its review statistics computed at query time.
type MovieSummary struct {
	Movie
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int64   `json:"review_count"`
}

// MovieDetail is the detail view: one movie and its reviews, newest first.
type MovieDetail struct {
	Movie   MovieSummary `json:"movie"`
	Reviews []Review     `json:"reviews"`
}

// Request structs for API
type CreateMovieRequest struct {
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description" validate:"required"`
	ReleaseYear int    `json:"release_year" validate:"required,gte=1900,notfuture"`
	Director    string `json:"director" validate:"required,max=255"`
	Genre       string `json:"genre" validate:"required,max=255"`
	Duration    int    `json:"duration" validate:"required,gte=1"`
	PosterURL   string `json:"poster_url" validate:"omitempty,url,max=1024"`
}
