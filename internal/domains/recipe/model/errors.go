package model

import "errors"

// Error codes
const (
	ErrCodeRecipeNotFound = "RCP001"
	ErrCodeUnauthorized   = "RCP002"
	ErrCodeForbidden      = "RCP003"
	ErrCodeInvalidInput   = "RCP004"
)

// Errors
var (
	ErrRecipeNotFound = errors.New("recipe not found")
	ErrUnauthorized   = errors.New("authentication required")
	ErrForbidden      = errors.New("not allowed to access this recipe")
)
