package service

import (
	"context"

	"recipeshare-backend/internal/domains/review/model"
)

// ServiceInterface defines review business logic.
type ServiceInterface interface {
	// ListReviews lists a recipe's reviews newest first with resolved
	// author labels.
	ListReviews(ctx context.Context, recipeID string) ([]model.ReviewResponse, error)

	// CreateReview inserts a review for the acting identity,
	// auto-provisioning a minimal user row on the author's first write.
	CreateReview(ctx context.Context, actorID string, req model.CreateReviewRequest) (*model.ReviewResponse, error)
}
