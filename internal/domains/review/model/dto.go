package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// REVIEW DTOs
// ========================================

// CreateReviewRequest - POST /reviews
type CreateReviewRequest struct {
	RecipeID string `json:"recipeId"`
	Text     string `json:"text"`
}

func (r CreateReviewRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.RecipeID, validation.Required.Error("recipeId is required")),
		validation.Field(&r.Text, validation.Required.Error("text is required")),
	)
}

// ReviewResponse is a review with its author label resolved.
type ReviewResponse struct {
	ID        string `json:"id"`
	RecipeID  string `json:"recipeId"`
	UserID    string `json:"userId"`
	Text      string `json:"text"`
	CreatedAt int64  `json:"createdAt"`
	Username  string `json:"username"`
}

// NewReviewResponse maps a joined row into the response shape.
func NewReviewResponse(r *ReviewWithAuthor) ReviewResponse {
	return ReviewResponse{
		ID:        r.ID,
		RecipeID:  r.RecipeID,
		UserID:    r.UserID,
		Text:      r.Text,
		CreatedAt: r.CreatedAt,
		Username:  r.DisplayUsername(),
	}
}
