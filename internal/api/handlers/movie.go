package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/movie-review-backend/internal/models"
	"github.com/princeprakhar/movie-review-backend/internal/services"
	"github.com/princeprakhar/movie-review-backend/internal/utils"
)

type MovieHandler struct {
	movieService  *services.MovieService
	reviewService *services.ReviewService
}

func NewMovieHandler(movieService *services.MovieService, reviewService *services.ReviewService) *MovieHandler {
	return &MovieHandler{
		movieService:  movieService,
		reviewService: reviewService,
	}
}

func (h *MovieHandler) ListMovies(c *gin.Context) {
	movies, err := h.movieService.ListMovies()
	if err != nil {
		respondError(c, err, "Failed to fetch movies")
		return
	}

	utils.SendSuccess(c, movies)
}

func (h *MovieHandler) GetMovie(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	detail, err := h.movieService.GetMovieDetail(id)
	if err != nil {
		respondError(c, err, "Failed to fetch movie")
		return
	}

	utils.SendSuccess(c, detail)
}

func (h *MovieHandler) CreateMovie(c *gin.Context) {
	var req models.CreateMovieRequest
	if !bindJSON(c, &req) {
		return
	}

	movie, err := h.movieService.CreateMovie(req)
	if err != nil {
		respondError(c, err, "Failed to create movie")
		return
	}

	utils.SendCreated(c, movie)
}

func (h *MovieHandler) DeleteMovie(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.movieService.DeleteMovie(id); err != nil {
		respondError(c, err, "Failed to delete movie")
		return
	}

	utils.SendMessage(c, "Movie deleted successfully")
}

func (h *MovieHandler) ListReviews(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	reviews, err := h.reviewService.ListReviewsForMovie(id)
	if err != nil {
		respondError(c, err, "Failed to fetch reviews")
		return
	}

	utils.SendSuccess(c, reviews)
}

// CreateReview handles POST /movies/:id/reviews; the path id overrides any
// movie_id in the body.
func (h *MovieHandler) CreateReview(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req models.CreateReviewRequest
	if !bindJSON(c, &req) {
		return
	}
	req.MovieID = id

	review, err := h.reviewService.CreateReview(req)
	if err != nil {
		respondError(c, err, "Failed to create review")
		return
	}

	utils.SendCreated(c, review)
}
