package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"recipeshare-backend/internal/domains/review/model"
	"recipeshare-backend/internal/domains/review/service"
	"recipeshare-backend/internal/shared/middleware"
	"recipeshare-backend/internal/shared/response"
)

// =====================================================
// REVIEW HANDLER
// =====================================================

type ReviewHandler struct {
	reviewService service.ServiceInterface
}

func NewReviewHandler(reviewService service.ServiceInterface) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// ListReviews lists reviews for a recipe, newest first
// GET /api/v1/reviews?recipeId=...
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	recipeID := c.Query("recipeId")
	if recipeID == "" {
		response.BadRequest(c, "missing recipeId")
		return
	}

	reviews, err := h.reviewService.ListReviews(c.Request.Context(), recipeID)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, reviews)
}

// CreateReview appends a review for the acting identity
// POST /api/v1/reviews
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.CreateReview(c.Request.Context(), actorID, req)
	if err != nil {
		h.respondReviewError(c, err)
		return
	}

	c.JSON(http.StatusCreated, review)
}

// =====================================================
// ERROR MAPPING
// =====================================================

func (h *ReviewHandler) respondReviewError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.Is(err, model.ErrUnauthorized):
		response.ErrorResponse(c, http.StatusUnauthorized, model.ErrCodeUnauthorized, err.Error())
	case errors.As(err, &vErrs):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidInput, err.Error())
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("Review operation failed")
		response.InternalServerError(c, "Internal server error")
	}
}
