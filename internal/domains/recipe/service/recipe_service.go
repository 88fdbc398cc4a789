package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"recipeshare-backend/internal/domains/recipe/model"
	"recipeshare-backend/internal/domains/recipe/repository"
	"recipeshare-backend/internal/infrastructure/storage"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type recipeService struct {
	recipeRepo repository.RecipeRepository
	uploader   storage.ImageUploader
	adminID    string // single configured admin identity
}

func NewRecipeService(
	recipeRepo repository.RecipeRepository,
	uploader storage.ImageUploader,
	adminID string,
) ServiceInterface {
	return &recipeService{
		recipeRepo: recipeRepo,
		uploader:   uploader,
		adminID:    adminID,
	}
}

// =====================================================
// IMAGE HANDLING
// =====================================================

// saveImage resolves the image field of a create/update request.
// Data URLs are decoded and uploaded to external storage; the stored
// value is the returned URL, or "" when the upload fails (no retry).
// Plain URLs and empty strings pass through unchanged.
func (s *recipeService) saveImage(ctx context.Context, image string) string {
	if !storage.IsDataURL(image) {
		return image
	}

	contentType, data, ok := storage.DecodeDataURL(image)
	if !ok {
		log.Warn().Msg("Malformed image data URL, storing empty image reference")
		return ""
	}

	if s.uploader == nil {
		log.Warn().Msg("Image storage unavailable, storing empty image reference")
		return ""
	}

	key := "recipes/" + uuid.NewString() + storage.ExtensionForContentType(contentType)
	url, err := s.uploader.UploadImage(ctx, key, data, contentType)
	if err != nil {
		log.Error().Err(err).Msg("Image upload failed, storing empty image reference")
		return ""
	}

	return url
}

// =====================================================
// LIST RECIPES
// =====================================================

func (s *recipeService) ListRecipes(ctx context.Context, actorID string) ([]*model.Recipe, error) {
	// Current policy: no public-recipe browsing without authentication.
	if actorID == "" {
		return []*model.Recipe{}, nil
	}

	recipes, err := s.recipeRepo.ListVisibleTo(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return recipes, nil
}

// =====================================================
// CREATE RECIPE
// =====================================================

func (s *recipeService) CreateRecipe(ctx context.Context, actorID string, req model.CreateRecipeRequest) (*model.CreateRecipeResponse, error) {
	if actorID == "" {
		return nil, model.ErrUnauthorized
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Upload blocks the request; on failure we proceed with an empty
	// image reference.
	imageURL := s.saveImage(ctx, req.Image)

	owner := actorID
	recipe := &model.Recipe{
		ID:                 uuid.NewString(),
		Name:               req.Name,
		Image:              imageURL,
		Rating:             req.Rating,
		Description:        req.Description,
		IngredientSections: model.NormalizeSections(req.IngredientSections),
		Instructions:       req.Instructions,
		Notes:              req.Notes,
		CreatedAt:          time.Now().UnixMilli(),
		UserID:             &owner,
		IsPublic:           false, // publishing is a separate admin act
	}

	if err := s.recipeRepo.Create(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to create recipe: %w", err)
	}

	return &model.CreateRecipeResponse{Success: true, ID: recipe.ID}, nil
}

// =====================================================
// GET RECIPE
// =====================================================

func (s *recipeService) GetRecipe(ctx context.Context, actorID, id string) (*model.Recipe, error) {
	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !recipe.CanView(actorID, s.adminID) {
		return nil, model.ErrForbidden
	}

	return recipe, nil
}

// =====================================================
// UPDATE RECIPE
// =====================================================

func (s *recipeService) UpdateRecipe(ctx context.Context, actorID, id string, req model.UpdateRecipeRequest) (*model.Recipe, error) {
	if actorID == "" {
		return nil, model.ErrUnauthorized
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !recipe.CanModify(actorID, s.adminID) {
		return nil, model.ErrForbidden
	}

	// Full overwrite of mutable fields. Owner and creation timestamp
	// never change; the visibility flag passes through the publish
	// policy and silently reverts to private on non-admin saves.
	recipe.Name = req.Name
	recipe.Image = s.saveImage(ctx, req.Image)
	recipe.Rating = req.Rating
	recipe.Description = req.Description
	recipe.IngredientSections = model.NormalizeSections(req.IngredientSections)
	recipe.Instructions = req.Instructions
	recipe.Notes = req.Notes
	recipe.IsPublic = model.ResolveVisibility(actorID, s.adminID, req.IsPublic)

	if err := s.recipeRepo.Update(ctx, recipe); err != nil {
		return nil, fmt.Errorf("failed to update recipe: %w", err)
	}

	return recipe, nil
}

// =====================================================
// DELETE RECIPE
// =====================================================

func (s *recipeService) DeleteRecipe(ctx context.Context, actorID, id string) error {
	if actorID == "" {
		return model.ErrUnauthorized
	}

	recipe, err := s.recipeRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if !recipe.CanModify(actorID, s.adminID) {
		return model.ErrForbidden
	}

	// Hard delete. Associated reviews are intentionally left in place
	// to preserve review history.
	if err := s.recipeRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}

	return nil
}
