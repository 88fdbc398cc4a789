package service

import (
	"context"

	"recipeshare-backend/internal/domains/recipe/model"
)

// ServiceInterface defines recipe business logic.
// actorID is the acting identity established by the auth middleware,
// "" for anonymous callers.
type ServiceInterface interface {
	// ListRecipes returns the actor's own recipes plus all public
	// recipes, newest first. Anonymous callers receive an empty list.
	ListRecipes(ctx context.Context, actorID string) ([]*model.Recipe, error)

	// CreateRecipe stores a new recipe owned by the actor. Embedded
	// image blobs are uploaded to external storage first.
	CreateRecipe(ctx context.Context, actorID string, req model.CreateRecipeRequest) (*model.CreateRecipeResponse, error)

	// GetRecipe fetches one recipe, enforcing the read visibility rule.
	GetRecipe(ctx context.Context, actorID, id string) (*model.Recipe, error)

	// UpdateRecipe overwrites all mutable fields after the edit rule
	// and the visibility policy have been applied.
	UpdateRecipe(ctx context.Context, actorID, id string, req model.UpdateRecipeRequest) (*model.Recipe, error)

	// DeleteRecipe hard-deletes the recipe after the delete rule.
	DeleteRecipe(ctx context.Context, actorID, id string) error
}
