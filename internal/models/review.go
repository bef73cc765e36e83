package models

import (
	"time"
)

type Review struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	MovieID      uint      `json:"movie_id" gorm:"not null;index"`
	ReviewerName string    `json:"reviewer_name" gorm:"size:100;not null"`
	Rating       int       `json:"rating" gorm:"not null;check:chk_reviews_rating,rating >= 1 AND rating <= 5"`
	Comment      string    `json:"comment" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at" gorm:"index"`
}

type CreateReviewRequest struct {
	MovieID      uint   `json:"movie_id" validate:"required"`
	ReviewerName string `json:"reviewer_name" validate:"required,max=100"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"required"`
}
