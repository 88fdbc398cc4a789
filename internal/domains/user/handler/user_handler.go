package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog/log"

	"recipeshare-backend/internal/domains/user/model"
	"recipeshare-backend/internal/domains/user/service"
	"recipeshare-backend/internal/shared/middleware"
	"recipeshare-backend/internal/shared/response"
)

// =====================================================
// USER HANDLER
// =====================================================

type UserHandler struct {
	userService service.ServiceInterface
}

func NewUserHandler(userService service.ServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GetProfile returns the acting identity's username ("" when unset)
// GET /api/v1/user
func (h *UserHandler) GetProfile(c *gin.Context) {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		response.Unauthorized(c, "authentication required")
		return
	}

	username, err := h.userService.GetUsername(c.Request.Context(), actorID)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, model.UsernameResponse{Username: username})
}

// UpdateProfile sets the acting identity's display username
// PUT /api/v1/user
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	actorID := middleware.ActorID(c)
	if actorID == "" {
		response.Unauthorized(c, "authentication required")
		return
	}

	var req model.UpdateUsernameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.userService.UpdateUsername(c.Request.Context(), actorID, req)
	if err != nil {
		h.respondUserError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AdminCheck reports whether the acting identity is the configured admin
// GET /api/v1/admin/check
func (h *UserHandler) AdminCheck(c *gin.Context) {
	actorID := middleware.ActorID(c)

	c.JSON(http.StatusOK, model.AdminCheckResponse{
		IsAdmin: h.userService.IsAdmin(actorID),
	})
}

// =====================================================
// ERROR MAPPING
// =====================================================

func (h *UserHandler) respondUserError(c *gin.Context, err error) {
	var vErrs validation.Errors

	switch {
	case errors.Is(err, model.ErrUnauthorized):
		response.ErrorResponse(c, http.StatusUnauthorized, model.ErrCodeUnauthorized, err.Error())
	case errors.Is(err, model.ErrUsernameTaken):
		response.ErrorResponse(c, http.StatusConflict, model.ErrCodeUsernameTaken, err.Error())
	case errors.Is(err, model.ErrInvalidUsername), errors.As(err, &vErrs):
		response.ErrorResponse(c, http.StatusBadRequest, model.ErrCodeInvalidUsername, err.Error())
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Msg("User operation failed")
		response.InternalServerError(c, "Internal server error")
	}
}
