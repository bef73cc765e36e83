package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClient_DecodesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":"Validation failed","fields":{"rating":"rating must be at most 5"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).CreateReview(context.Background(), NewReview{MovieID: 1, Rating: 9})

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %v", err)
	}
	if apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Validation failed" {
		t.Errorf("unexpected error %+v", apiErr)
	}
	if apiErr.Fields["rating"] == "" {
		t.Errorf("expected rating field, got %v", apiErr.Fields)
	}
	if !strings.Contains(apiErr.Error(), "rating must be at most 5") {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestClient_NonJSONError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := New(srv.URL).ListMovies(context.Background())

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502 APIError, got %v", err)
	}
	if apiErr.Message != http.StatusText(http.StatusBadGateway) {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestClient_SendsTokenAfterLogin(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/login":
			w.Write([]byte(`{"token":"tok-1","expires_at":"2030-01-01T00:00:00Z","username":"admin"}`))
		default:
			gotAuth = r.Header.Get("Authorization")
			w.Write([]byte(`{"message":"Movie deleted successfully"}`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL + "/")
	session, err := c.Login(context.Background(), "admin", "pw")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if session.Token != "tok-1" {
		t.Errorf("Token = %q", session.Token)
	}

	if err := c.DeleteMovie(context.Background(), 3); err != nil {
		t.Fatalf("DeleteMovie() error = %v", err)
	}
	if gotAuth != "Bearer tok-1" {
		t.Errorf("Authorization = %q, want Bearer tok-1", gotAuth)
	}
}
