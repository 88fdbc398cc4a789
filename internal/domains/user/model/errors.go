package model

import "errors"

// Error codes
const (
	ErrCodeUnauthorized    = "USR001"
	ErrCodeInvalidUsername = "USR002"
	ErrCodeUsernameTaken   = "USR003"
)

// Errors
var (
	ErrUnauthorized    = errors.New("authentication required")
	ErrInvalidUsername = errors.New("invalid username")
	ErrUsernameTaken   = errors.New("username already taken")
)
