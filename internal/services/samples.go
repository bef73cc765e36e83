package services

import "github.com/princeprakhar/movie-review-backend/internal/models"

// SampleMovies is the starter catalog offered by the admin seed action.
func SampleMovies() []models.CreateMovieRequest {
	return []models.CreateMovieRequest{
		{
			Title:       "Avatar: The Way of Water",
			Description: "Jake Sully lives with his newfound family formed on the extrasolar moon Pandora.",
			ReleaseYear: 2022,
			Director:    "James Cameron",
			Genre:       "Action, Adventure, Fantasy",
			Duration:    192,
			PosterURL:   "https://m.media-amazon.com/images/M/MV5BYjhiNjBlODctY2ZiOC00YjVlLWFlNzAtNTVhNzM1YjI1NzMxXkEyXkFqcGdeQXVyMjQxNTE1MDA@._V1_.jpg",
		},
		{
			Title:       "Top Gun: Maverick",
			Description: "After thirty years, Maverick is still pushing the envelope as a top naval aviator.",
			ReleaseYear: 2022,
			Director:    "Joseph Kosinski",
			Genre:       "Action, Drama",
			Duration:    130,
			PosterURL:   "https://m.media-amazon.com/images/M/MV5BZWYzOGEwNTgtNWU3NS00ZTQ0LWJkODUtMmVhMjIwMjA1ZmQwXkEyXkFqcGdeQXVyMjkwOTAyMDU@._V1_.jpg",
		},
		{
			Title:       "Spider-Man: No Way Home",
			Description: "With Spider-Man's identity now revealed, Peter asks Doctor Strange for help.",
			ReleaseYear: 2021,
			Director:    "Jon Watts",
			Genre:       "Action, Adventure, Fantasy",
			Duration:    148,
			PosterURL:   "https://m.media-amazon.com/images/M/MV5BZWMyYzFjYTYtNTRjYi00OGExLWE2YzgtOGRmYjAxZTU3NzBiXkEyXkFqcGdeQXVyMzQ0MzA0NTM@._V1_.jpg",
		},
	}
}
