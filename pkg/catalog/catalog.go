// Package catalog holds the rating and genre arithmetic shared by the server
// dashboard and API clients.
package catalog

import (
	"math"
	"strings"
)

// RatingScale is the number of decimal places kept for every rating average,
// stored or computed.
const RatingScale = 2

// RoundRating rounds to RatingScale decimal places, halves away from zero.
func RoundRating(v float64) float64 {
	scale := math.Pow10(RatingScale)
	return math.Round(v*scale) / scale
}

// MeanRating is the rounded arithmetic mean of ratings, 0 for an empty set.
func MeanRating(ratings []int) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	return RoundRating(float64(sum) / float64(len(ratings)))
}

// SplitGenres splits a comma separated genre list, dropping blanks.
func SplitGenres(genre string) []string {
	var out []string
	for _, g := range strings.Split(genre, ",") {
		if g = strings.TrimSpace(g); g != "" {
			out = append(out, g)
		}
	}
	return out
}

// Entry is the per-movie input to Summarize.
type Entry struct {
	Genre         string
	AverageRating float64
	ReviewCount   int64
}

type Summary struct {
	Movies        int64
	Reviews       int64
	AverageRating float64
	// Genres are distinct (case-insensitive) in first-seen order.
	Genres []string
}

// Summarize computes dashboard figures. AverageRating is the mean of the
// per-movie averages, movies without reviews counting as 0.
func Summarize(entries []Entry) Summary {
	s := Summary{Movies: int64(len(entries))}

	seen := map[string]bool{}
	var sum float64
	for _, e := range entries {
		s.Reviews += e.ReviewCount
		sum += e.AverageRating
		for _, g := range SplitGenres(e.Genre) {
			key := strings.ToLower(g)
			if seen[key] {
				continue
			}
			seen[key] = true
			s.Genres = append(s.Genres, g)
		}
	}

	if len(entries) > 0 {
		s.AverageRating = RoundRating(sum / float64(len(entries)))
	}
	return s
}
