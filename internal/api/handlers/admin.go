package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/movie-review-backend/internal/models"
	"github.com/princeprakhar/movie-review-backend/internal/services"
	"github.com/princeprakhar/movie-review-backend/internal/utils"
)

// multipart overhead allowed on top of the poster itself
const posterFormSlack = 1 << 20

type AdminHandler struct {
	adminService *services.AdminService
	authService  *services.AuthService
	posters      services.PosterStorage
}

// NewAdminHandler wires the admin endpoints. posters may be nil when no
// object storage is configured; uploads then answer 503.
func NewAdminHandler(adminService *services.AdminService, authService *services.AuthService, posters services.PosterStorage) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		authService:  authService,
		posters:      posters,
	}
}

func (h *AdminHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.SendUnauthorized(c, "Invalid username or password")
			return
		}
		respondError(c, err, "Failed to log in")
		return
	}

	utils.SendSuccess(c, resp)
}

func (h *AdminHandler) GetDashboard(c *gin.Context) {
	stats, err := h.adminService.Dashboard()
	if err != nil {
		respondError(c, err, "Failed to fetch dashboard stats")
		return
	}

	utils.SendSuccess(c, stats)
}

func (h *AdminHandler) Reconcile(c *gin.Context) {
	result, err := h.adminService.Reconcile()
	if err != nil {
		respondError(c, err, "Failed to reconcile catalog")
		return
	}

	utils.SendSuccess(c, result)
}

func (h *AdminHandler) SeedSampleMovies(c *gin.Context) {
	result, err := h.adminService.SeedSampleMovies()
	if err != nil {
		respondError(c, err, "Failed to seed sample movies")
		return
	}

	utils.SendCreated(c, result)
}

func (h *AdminHandler) UploadPoster(c *gin.Context) {
	if h.posters == nil {
		utils.SendError(c, http.StatusServiceUnavailable, "Poster storage is not configured")
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, services.MaxPosterSize+posterFormSlack)

	header, err := c.FormFile("poster")
	if err != nil {
		utils.SendValidationError(c, "Invalid poster upload", map[string]string{"poster": "poster file is required"})
		return
	}

	file, err := header.Open()
	if err != nil {
		utils.SendInternalError(c, "Failed to open poster", err)
		return
	}
	defer file.Close()

	url, err := h.posters.UploadPoster(c.Request.Context(), file, header.Filename, header.Header.Get("Content-Type"), header.Size)
	if err != nil {
		respondError(c, err, "Failed to upload poster")
		return
	}

	utils.SendCreated(c, models.PosterUploadResponse{PosterURL: url})
}
