package client

import (
	"sort"
	"strings"

	"github.com/princeprakhar/movie-review-backend/pkg/catalog"
)

const (
	SortByRating  = "rating"
	SortByYear    = "year"
	SortByTitle   = "title"
	SortByReviews = "reviews"

	OrderAsc  = "asc"
	OrderDesc = "desc"

	// AllGenres disables the genre filter.
	AllGenres = "All"
)

// AverageRating is mean(review.rating) rounded to two decimals, 0 when empty.
// It agrees with the server's stored rating and average_rating.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	return catalog.RoundRating(float64(sum) / float64(len(reviews)))
}

// DisplayRating is the rating a page shows for a movie.
func DisplayRating(m Movie) float64 {
	return m.AverageRating
}

// SplitGenres splits a comma separated genre list, dropping blanks.
func SplitGenres(genre string) []string {
	return catalog.SplitGenres(genre)
}

// Filter keeps movies whose title or director contains search and that carry
// genre. Both matches ignore case; an empty search or genre matches all.
func Filter(movies []Movie, search, genre string) []Movie {
	search = strings.ToLower(strings.TrimSpace(search))
	genre = strings.TrimSpace(genre)
	anyGenre := genre == "" || strings.EqualFold(genre, AllGenres)

	out := make([]Movie, 0, len(movies))
	for _, m := range movies {
		if search != "" &&
			!strings.Contains(strings.ToLower(m.Title), search) &&
			!strings.Contains(strings.ToLower(m.Director), search) {
			continue
		}
		if !anyGenre && !hasGenre(m, genre) {
			continue
		}
		out = append(out, m)
	}
	return out
}

func hasGenre(m Movie, genre string) bool {
	for _, g := range SplitGenres(m.Genre) {
		if strings.EqualFold(g, genre) {
			return true
		}
	}
	return false
}

// Sort returns a sorted copy. Unknown keys keep the input order; ties keep
// their relative order.
func Sort(movies []Movie, by, order string) []Movie {
	out := append([]Movie(nil), movies...)

	var less func(a, b Movie) bool
	switch by {
	case SortByRating:
		less = func(a, b Movie) bool { return a.AverageRating < b.AverageRating }
	case SortByYear:
		less = func(a, b Movie) bool { return a.ReleaseYear < b.ReleaseYear }
	case SortByTitle:
		less = func(a, b Movie) bool { return strings.ToLower(a.Title) < strings.ToLower(b.Title) }
	case SortByReviews:
		less = func(a, b Movie) bool { return a.ReviewCount < b.ReviewCount }
	default:
		return out
	}

	desc := order == OrderDesc
	sort.SliceStable(out, func(i, j int) bool {
		if desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Genres lists distinct genres in first-seen order.
func Genres(movies []Movie) []string {
	return catalog.Summarize(entries(movies)).Genres
}

// CatalogStats mirrors the admin dashboard arithmetic.
func CatalogStats(movies []Movie) Stats {
	sum := catalog.Summarize(entries(movies))
	return Stats{
		TotalMovies:   sum.Movies,
		TotalReviews:  sum.Reviews,
		AverageRating: sum.AverageRating,
		GenreCount:    len(sum.Genres),
	}
}

func entries(movies []Movie) []catalog.Entry {
	out := make([]catalog.Entry, len(movies))
	for i, m := range movies {
		out[i] = catalog.Entry{Genre: m.Genre, AverageRating: m.AverageRating, ReviewCount: m.ReviewCount}
	}
	return out
}
