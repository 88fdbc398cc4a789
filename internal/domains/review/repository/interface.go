package repository

import (
	"context"

	"recipeshare-backend/internal/domains/review/model"
)

// =====================================================
// REVIEW REPOSITORY INTERFACE
// =====================================================

type ReviewRepository interface {
	// ListByRecipe lists a recipe's reviews newest first, each joined
	// with the author's username (nil when unset).
	ListByRecipe(ctx context.Context, recipeID string) ([]*model.ReviewWithAuthor, error)

	// EnsureUser inserts a minimal user row if the author has none yet
	// (ignore on conflict), so the review's foreign key is satisfied.
	EnsureUser(ctx context.Context, userID string, createdAt int64) error

	// Create inserts the review.
	Create(ctx context.Context, review *model.Review) error

	// GetUsername resolves the author's username, nil when unset or
	// when no row exists.
	GetUsername(ctx context.Context, userID string) (*string, error)
}
