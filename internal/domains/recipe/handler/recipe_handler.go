package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"recipeshare-backend/internal/domains/recipe/model"
	"recipeshare-backend/internal/domains/recipe/service"
	"recipeshare-backend/internal/shared/middleware"
	"recipeshare-backend/internal/shared/response"
)

// =====================================================
// RECIPE HANDLER
// =====================================================

type RecipeHandler struct {
	recipeService service.ServiceInterface
}

func NewRecipeHandler(recipeService service.ServiceInterface) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
	}
}

// ListRecipes lists the actor's recipes plus public ones, newest first
// GET /api/v1/recipes
func (h *RecipeHandler) ListRecipes(c *gin.Context) {
	actorID := middleware.ActorID(c)

	recipes, err := h.recipeService.ListRecipes(c.Request.Context(), actorID)
	if err != nil {
		h.respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipes)
}

// CreateRecipe creates a new recipe owned by the actor
// POST /api/v1/recipes
func (h *RecipeHandler) CreateRecipe(c *gin.Context) {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.recipeService.CreateRecipe(c.Request.Context(), actorID, req)
	if err != nil {
		h.respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetRecipe fetches one recipe by id
// GET /api/v1/recipes/:id
func (h *RecipeHandler) GetRecipe(c *gin.Context) {
	actorID := middleware.ActorID(c)
	recipeID := c.Param("id")

	recipe, err := h.recipeService.GetRecipe(c.Request.Context(), actorID, recipeID)
	if err != nil {
		h.respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// UpdateRecipe overwrites the recipe's mutable fields
// PUT /api/v1/recipes/:id
func (h *RecipeHandler) UpdateRecipe(c *gin.Context) {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		response.Unauthorized(c, "authentication required")
		return
	}
	recipeID := c.Param("id")

	var req model.UpdateRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	recipe, err := h.recipeService.UpdateRecipe(c.Request.Context(), actorID, recipeID, req)
	if err != nil {
		h.respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, recipe)
}

// DeleteRecipe hard-deletes the recipe
// DELETE /api/v1/recipes/:id
func (h *RecipeHandler) DeleteRecipe(c *gin.Context) {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		response.Unauthorized(c, "authentication required")
		return
	}
	recipeID := c.Param("id")

	if err := h.recipeService.DeleteRecipe(c.Request.Context(), actorID, recipeID); err != nil {
		h.respondRecipeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// =====================================================
// ERROR MAPPING
// =====================================================

// respondRecipeError converts service errors to the HTTP taxonomy.
// Storage failures become a generic 500; the cause is only logged.
func (h *RecipeHandler) respondRecipeError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.Is(err, model.ErrRecipeNotFound):
		response.ErrorResponse(c, http.StatusNotFound, model.ErrCodeRecipeNotFound, err.Error())
	case errors.Is(err, model.ErrUnauthorized):
		response.ErrorResponse(c, http.StatusUnauthorized, model.ErrCodeUnauthorized, err.Error())
	case errors.Is(err, model.ErrForbidden):
		response.ErrorResponse(c, http.StatusForbidden, model.ErrCodeForbidden, err.Error())
	case errors.As(err, &vErrs):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidInput, err.Error())
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Recipe operation failed")
		response.InternalServerError(c, "Internal server error")
	}
}
