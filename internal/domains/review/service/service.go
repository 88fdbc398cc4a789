package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"recipeshare-backend/internal/domains/review/model"
	"recipeshare-backend/internal/domains/review/repository"
)

// =====================================================
// SERVICE IMPLEMENTATION
// =====================================================

type reviewService struct {
	reviewRepo repository.ReviewRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository) ServiceInterface {
	return &reviewService{
		reviewRepo: reviewRepo,
	}
}

// =====================================================
// LIST REVIEWS
// =====================================================

func (s *reviewService) ListReviews(ctx context.Context, recipeID string) ([]model.ReviewResponse, error) {
	reviews, err := s.reviewRepo.ListByRecipe(ctx, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	responses := make([]model.ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		responses = append(responses, model.NewReviewResponse(review))
	}

	return responses, nil
}

// =====================================================
// CREATE REVIEW
// =====================================================

func (s *reviewService) CreateReview(ctx context.Context, actorID string, req model.CreateReviewRequest) (*model.ReviewResponse, error) {
	if actorID == "" {
		return nil, model.ErrUnauthorized
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UnixMilli()

	// The review carries a foreign key to users, so a first-time
	// reviewer gets a minimal row (null username) before the insert.
	if err := s.reviewRepo.EnsureUser(ctx, actorID, now); err != nil {
		return nil, fmt.Errorf("failed to provision user row: %w", err)
	}

	review := &model.Review{
		ID:        uuid.NewString(),
		RecipeID:  req.RecipeID,
		UserID:    actorID,
		Text:      req.Text,
		CreatedAt: now,
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	username, err := s.reviewRepo.GetUsername(ctx, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve username: %w", err)
	}

	response := model.NewReviewResponse(&model.ReviewWithAuthor{
		Review:   *review,
		Username: username,
	})
	return &response, nil
}
