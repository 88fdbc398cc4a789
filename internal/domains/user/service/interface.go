package service

import (
	"context"

	"recipeshare-backend/internal/domains/user/model"
)

// ServiceInterface defines user profile business logic.
type ServiceInterface interface {
	// GetUsername returns the acting identity's username, "" when the
	// identity has no row yet.
	GetUsername(ctx context.Context, actorID string) (string, error)

	// UpdateUsername trims and stores the username, rejecting values
	// held by another identity with model.ErrUsernameTaken.
	UpdateUsername(ctx context.Context, actorID string, req model.UpdateUsernameRequest) (*model.UpdateUsernameResponse, error)

	// IsAdmin compares the acting identity to the configured admin.
	IsAdmin(actorID string) bool
}
