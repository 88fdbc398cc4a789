package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipeshare-backend/internal/domains/user/model"
)

const testAdminID = "user-admin"

// --- fakes ---

type fakeUserRepo struct {
	username *string
	getErr   error

	taken    bool
	takenErr error

	upsertedUserID   string
	upsertedUsername string
	upsertErr        error
}

func (f *fakeUserRepo) GetUsername(ctx context.Context, userID string) (*string, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.username, nil
}

func (f *fakeUserRepo) IsUsernameTakenByOther(ctx context.Context, username, userID string) (bool, error) {
	if f.takenErr != nil {
		return false, f.takenErr
	}
	return f.taken, nil
}

func (f *fakeUserRepo) UpsertUsername(ctx context.Context, userID, username string, createdAt int64) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upsertedUserID = userID
	f.upsertedUsername = username
	return nil
}

func strPtr(s string) *string { return &s }

// --- get username ---

func TestGetUsername(t *testing.T) {
	t.Run("anonymous is unauthorized", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{}, testAdminID)

		_, err := svc.GetUsername(context.Background(), "")
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("unset username resolves to empty string", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{}, testAdminID)

		username, err := svc.GetUsername(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, "", username)
	})

	t.Run("set username is returned", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{username: strPtr("chef_anna")}, testAdminID)

		username, err := svc.GetUsername(context.Background(), "u1")
		require.NoError(t, err)
		assert.Equal(t, "chef_anna", username)
	})
}

// --- update username ---

func TestUpdateUsername(t *testing.T) {
	t.Run("anonymous is unauthorized", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{}, testAdminID)

		_, err := svc.UpdateUsername(context.Background(), "", model.UpdateUsernameRequest{Username: "x"})
		assert.ErrorIs(t, err, model.ErrUnauthorized)
	})

	t.Run("username is trimmed before storing", func(t *testing.T) {
		repo := &fakeUserRepo{}
		svc := NewUserService(repo, testAdminID)

		resp, err := svc.UpdateUsername(context.Background(), "u1", model.UpdateUsernameRequest{Username: "  chef_anna  "})
		require.NoError(t, err)
		assert.True(t, resp.Success)
		assert.Equal(t, "chef_anna", resp.Username)
		assert.Equal(t, "chef_anna", repo.upsertedUsername)
		assert.Equal(t, "u1", repo.upsertedUserID)
	})

	t.Run("whitespace-only username is invalid", func(t *testing.T) {
		svc := NewUserService(&fakeUserRepo{}, testAdminID)

		_, err := svc.UpdateUsername(context.Background(), "u1", model.UpdateUsernameRequest{Username: "   "})
		assert.ErrorIs(t, err, model.ErrInvalidUsername)
	})

	t.Run("username held by another identity conflicts", func(t *testing.T) {
		repo := &fakeUserRepo{taken: true}
		svc := NewUserService(repo, testAdminID)

		_, err := svc.UpdateUsername(context.Background(), "u1", model.UpdateUsernameRequest{Username: "chef_anna"})
		assert.ErrorIs(t, err, model.ErrUsernameTaken)
		assert.Empty(t, repo.upsertedUsername)
	})

	t.Run("constraint race surfaces as taken", func(t *testing.T) {
		// The pre-check passed but the unique index fired on upsert.
		repo := &fakeUserRepo{upsertErr: model.ErrUsernameTaken}
		svc := NewUserService(repo, testAdminID)

		_, err := svc.UpdateUsername(context.Background(), "u1", model.UpdateUsernameRequest{Username: "chef_anna"})
		assert.ErrorIs(t, err, model.ErrUsernameTaken)
	})
}

// --- admin check ---

func TestIsAdmin(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{}, testAdminID)

	assert.True(t, svc.IsAdmin(testAdminID))
	assert.False(t, svc.IsAdmin("u1"))
	assert.False(t, svc.IsAdmin(""))

	// Unset admin identity matches nobody.
	noAdmin := NewUserService(&fakeUserRepo{}, "")
	assert.False(t, noAdmin.IsAdmin(""))
	assert.False(t, noAdmin.IsAdmin("u1"))
}
