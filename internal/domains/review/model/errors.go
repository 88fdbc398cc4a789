package model

import "errors"

// Error codes
const (
	ErrCodeUnauthorized = "REV001"
	ErrCodeInvalidInput = "REV002"
)

// Errors
var (
	ErrUnauthorized = errors.New("authentication required")
)
