package repository

import "context"

// =====================================================
// USER REPOSITORY INTERFACE
// =====================================================

type UserRepository interface {
	// GetUsername returns the identity's username, nil when unset or
	// when the identity has no row yet.
	GetUsername(ctx context.Context, userID string) (*string, error)

	// IsUsernameTakenByOther reports whether a different identity
	// already holds the exact username.
	IsUsernameTakenByOther(ctx context.Context, username, userID string) (bool, error)

	// UpsertUsername sets the identity's username, creating the row
	// (with createdAt) when absent. Returns model.ErrUsernameTaken when
	// the unique constraint fires, which a concurrent loser hits even
	// after passing the uniqueness check.
	UpsertUsername(ctx context.Context, userID, username string, createdAt int64) error
}
