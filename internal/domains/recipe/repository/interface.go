package repository

import (
	"context"

	"recipeshare-backend/internal/domains/recipe/model"
)

// =====================================================
// RECIPE REPOSITORY INTERFACE
// =====================================================

type RecipeRepository interface {
	// Create inserts a new recipe row.
	Create(ctx context.Context, recipe *model.Recipe) error

	// GetByID fetches one recipe, model.ErrRecipeNotFound when absent.
	GetByID(ctx context.Context, id string) (*model.Recipe, error)

	// ListVisibleTo lists recipes owned by userID plus all public
	// recipes, newest first by creation timestamp.
	ListVisibleTo(ctx context.Context, userID string) ([]*model.Recipe, error)

	// Update overwrites all mutable fields of the row.
	Update(ctx context.Context, recipe *model.Recipe) error

	// Delete hard-deletes the row. Reviews are not cascaded.
	Delete(ctx context.Context, id string) error
}
