package utils

import (
	"errors"
	"strconv"
	"strings"
	"testing"
	"time"
)

type movieInput struct {
	Title       string `json:"title" validate:"required,max=10"`
	ReleaseYear int    `json:"release_year" validate:"required,gte=1900,notfuture"`
	PosterURL   string `json:"poster_url" validate:"omitempty,url"`
}

func TestValidateStruct_Valid(t *testing.T) {
	in := movieInput{Title: "Heat", ReleaseYear: 1995}
	if err := ValidateStruct(in); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
}

func TestValidateStruct_FieldMessages(t *testing.T) {
	in := movieInput{Title: "", ReleaseYear: 1899, PosterURL: "not a url"}

	err := ValidateStruct(in)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %T (%v)", err, err)
	}

	want := map[string]string{
		"title":        "title is required",
		"release_year": "release_year must be at least 1900",
		"poster_url":   "poster_url must be a valid URL",
	}
	for field, msg := range want {
		if got := verr.Fields[field]; got != msg {
			t.Errorf("field %s: got %q, want %q", field, got, msg)
		}
	}
}

func TestValidateStruct_NotFuture(t *testing.T) {
	next := time.Now().Year() + 1

	err := ValidateStruct(movieInput{Title: "Soon", ReleaseYear: next})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error for year %d", next)
	}
	if !strings.Contains(verr.Fields["release_year"], strconv.Itoa(time.Now().Year())) {
		t.Errorf("unexpected message: %q", verr.Fields["release_year"])
	}

	if err := ValidateStruct(movieInput{Title: "Now", ReleaseYear: time.Now().Year()}); err != nil {
		t.Errorf("current year should be accepted: %v", err)
	}
}

func TestValidateStruct_StringLength(t *testing.T) {
	err := ValidateStruct(movieInput{Title: "far too long title", ReleaseYear: 2000})
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatal("expected validation error")
	}
	if verr.Fields["title"] != "title must be at most 10 characters" {
		t.Errorf("unexpected message: %q", verr.Fields["title"])
	}
}

func TestValidationError_ErrorIsSorted(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{"b": "second", "a": "first"}}
	if got := err.Error(); got != "validation failed: a: first; b: second" {
		t.Errorf("unexpected Error(): %q", got)
	}
}
