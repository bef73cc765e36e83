package client

import "time"

type Movie struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ReleaseYear   int       `json:"release_year"`
	Director      string    `json:"director"`
	Genre         string    `json:"genre"`
	Duration      int       `json:"duration"`
	PosterURL     string    `json:"poster_url"`
	Rating        *float64  `json:"rating"`
	CreatedAt     time.Time `json:"created_at"`
	AverageRating float64   `json:"average_rating"`
	ReviewCount   int64     `json:"review_count"`
}

type Review struct {
	ID           uint      `json:"id"`
	MovieID      uint      `json:"movie_id"`
	ReviewerName string    `json:"reviewer_name"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CreatedAt    time.Time `json:"created_at"`
}

type MovieDetail struct {
	Movie   Movie    `json:"movie"`
	Reviews []Review `json:"reviews"`
}

type NewMovie struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ReleaseYear int    `json:"release_year"`
	Director    string `json:"director"`
	Genre       string `json:"genre"`
	Duration    int    `json:"duration"`
	PosterURL   string `json:"poster_url,omitempty"`
}

type NewReview struct {
	MovieID      uint   `json:"movie_id"`
	ReviewerName string `json:"reviewer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

type Session struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

type Stats struct {
	TotalMovies   int64   `json:"total_movies"`
	TotalReviews  int64   `json:"total_reviews"`
	AverageRating float64 `json:"average_rating"`
	GenreCount    int     `json:"genre_count"`
}
