package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"recipeshare-backend/internal/domains/user/model"
	"recipeshare-backend/internal/domains/user/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type userService struct {
	userRepo repository.UserRepository
	adminID  string
}

func NewUserService(userRepo repository.UserRepository, adminID string) ServiceInterface {
	return &userService{
		userRepo: userRepo,
		adminID:  adminID,
	}
}

// =====================================================
// GET USERNAME
// =====================================================

func (s *userService) GetUsername(ctx context.Context, actorID string) (string, error) {
	if actorID == "" {
		return "", model.ErrUnauthorized
	}

	username, err := s.userRepo.GetUsername(ctx, actorID)
	if err != nil {
		return "", fmt.Errorf("failed to get username: %w", err)
	}
	if username == nil {
		return "", nil
	}

	return *username, nil
}

// =====================================================
// UPDATE USERNAME
// =====================================================

func (s *userService) UpdateUsername(ctx context.Context, actorID string, req model.UpdateUsernameRequest) (*model.UpdateUsernameResponse, error) {
	if actorID == "" {
		return nil, model.ErrUnauthorized
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, model.ErrInvalidUsername
	}

	// Uniqueness check and upsert are separate round-trips; the unique
	// constraint catches the race and the repository maps it to
	// ErrUsernameTaken for the loser.
	taken, err := s.userRepo.IsUsernameTakenByOther(ctx, username, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if taken {
		return nil, model.ErrUsernameTaken
	}

	if err := s.userRepo.UpsertUsername(ctx, actorID, username, time.Now().UnixMilli()); err != nil {
		return nil, err
	}

	return &model.UpdateUsernameResponse{Success: true, Username: username}, nil
}

// =====================================================
// ADMIN CHECK
// =====================================================

func (s *userService) IsAdmin(actorID string) bool {
	// An unset admin identity matches nobody, in particular not anonymous.
	return s.adminID != "" && actorID == s.adminID
}
