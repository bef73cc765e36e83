package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/princeprakhar/movie-review-backend/internal/services"
	"github.com/princeprakhar/movie-review-backend/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", utils.NewFieldError("rating", "rating must be at most 5"), http.StatusBadRequest, "Validation failed"},
		{"not found", fmt.Errorf("wrapped: %w", services.ErrMovieNotFound), http.StatusNotFound, "Movie not found"},
		{"storage", fmt.Errorf("%w: connection refused on 10.0.0.3", services.ErrDatabaseQuery), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err, "Failed")

			if w.Code != tt.status {
				t.Fatalf("status = %d, want %d", w.Code, tt.status)
			}
			var resp utils.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Error != tt.body {
				t.Errorf("error = %q, want %q", resp.Error, tt.body)
			}
			if bytes.Contains(w.Body.Bytes(), []byte("10.0.0.3")) {
				t.Error("internal detail leaked to the client")
			}
		})
	}
}

type fakePosters struct {
	gotName string
	gotBody []byte
	err     error
}

func (f *fakePosters) UploadPoster(_ context.Context, body io.Reader, filename, contentType string, size int64) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if _, err := services.PosterContentType(filename, contentType, size); err != nil {
		return "", err
	}
	f.gotName = filename
	f.gotBody, _ = io.ReadAll(body)
	return "https://cdn.example/posters/" + filename, nil
}

func posterRequest(t *testing.T, field, filename string, content []byte) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(field, filename)
	if err != nil {
		t.Fatal(err)
	}
	part.Write(content)
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/posters", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func TestUploadPoster(t *testing.T) {
	posters := &fakePosters{}
	h := NewAdminHandler(nil, nil, posters)
	r := gin.New()
	r.POST("/posters", h.UploadPoster)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, posterRequest(t, "poster", "dune.png", []byte("png-bytes")))
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["poster_url"] != "https://cdn.example/posters/dune.png" {
		t.Errorf("poster_url = %q", resp["poster_url"])
	}
	if string(posters.gotBody) != "png-bytes" {
		t.Errorf("storage received %q", posters.gotBody)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, posterRequest(t, "poster", "notes.txt", []byte("text")))
	if w.Code != http.StatusBadRequest {
		t.Errorf("unsupported type status = %d, want 400", w.Code)
	}

	w = httptest.NewRecorder()
	r.ServeHTTP(w, posterRequest(t, "image", "dune.png", []byte("png")))
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing field status = %d, want 400", w.Code)
	}

	posters.err = errors.New("s3 down")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, posterRequest(t, "poster", "dune.png", []byte("png")))
	if w.Code != http.StatusInternalServerError {
		t.Errorf("storage failure status = %d, want 500", w.Code)
	}
}

func TestUploadPoster_Disabled(t *testing.T) {
	h := NewAdminHandler(nil, nil, nil)
	r := gin.New()
	r.POST("/posters", h.UploadPoster)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, posterRequest(t, "poster", "dune.png", []byte("png")))
	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", w.Code)
	}
}

func TestBindJSON_FieldMessages(t *testing.T) {
	type payload struct {
		MovieID uint   `json:"movie_id"`
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}

	tests := []struct {
		name  string
		body  string
		field string
		want  string
	}{
		{"string for int", `{"rating":"5"}`, "rating", "rating must be an integer"},
		{"float for int", `{"rating":4.5}`, "rating", "rating must be an integer"},
		{"negative uint", `{"movie_id":-3}`, "movie_id", "movie_id must be a positive integer"},
		{"number for string", `{"comment":12}`, "comment", "comment must be a string"},
		{"not an object", `[1,2]`, "body", "request body must be a JSON object"},
		{"syntax", `{"rating":`, "body", "request body must be valid JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(tt.body))
			c.Request.Header.Set("Content-Type", "application/json")

			var req payload
			if bindJSON(c, &req) {
				t.Fatal("expected bind to fail")
			}
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			var resp utils.ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatal(err)
			}
			if resp.Fields[tt.field] != tt.want {
				t.Errorf("fields = %v, want %s=%q", resp.Fields, tt.field, tt.want)
			}
		})
	}
}
