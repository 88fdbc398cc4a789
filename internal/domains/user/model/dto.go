package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ========================================
// USER PROFILE DTOs
// ========================================

// UpdateUsernameRequest - PUT /user
// The username is trimmed before the emptiness and uniqueness checks.
type UpdateUsernameRequest struct {
	Username string `json:"username"`
}

func (r UpdateUsernameRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Username, validation.Required.Error("username is required")),
	)
}

// UsernameResponse - GET /user ("" when the identity has no row yet)
type UsernameResponse struct {
	Username string `json:"username"`
}

// UpdateUsernameResponse - PUT /user
type UpdateUsernameResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

// AdminCheckResponse - GET /admin/check
type AdminCheckResponse struct {
	IsAdmin bool `json:"isAdmin"`
}
