package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// RECIPE DTOs
// ========================================

// CreateRecipeRequest - POST /recipes
// Image may be a URL, empty, or an embedded data:image/...;base64 blob;
// blobs are uploaded to external storage before the row is written.
type CreateRecipeRequest struct {
	Name               string              `json:"name"`
	Image              string              `json:"image"`
	Rating             float64             `json:"rating"`
	Description        *string             `json:"description"`
	IngredientSections []IngredientSection `json:"ingredientSections"`
	Instructions       string              `json:"instructions"`
	Notes              *string             `json:"notes"`
}

func (r CreateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Instructions, validation.Required.Error("instructions are required")),
	)
}

// UpdateRecipeRequest - PUT /recipes/:id
// Full overwrite: omitted fields are treated as provided-empty, that is
// the caller's responsibility. IsPublic passes through the visibility
// policy and only sticks for the admin identity.
type UpdateRecipeRequest struct {
	Name               string              `json:"name"`
	Image              string              `json:"image"`
	Rating             float64             `json:"rating"`
	Description        *string             `json:"description"`
	IngredientSections []IngredientSection `json:"ingredientSections"`
	Instructions       string              `json:"instructions"`
	Notes              *string             `json:"notes"`
	IsPublic           bool                `json:"isPublic"`
}

func (r UpdateRecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required.Error("name is required")),
		validation.Field(&r.Instructions, validation.Required.Error("instructions are required")),
	)
}

// CreateRecipeResponse - body returned on successful create.
type CreateRecipeResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}
