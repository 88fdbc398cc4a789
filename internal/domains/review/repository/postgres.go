package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipeshare-backend/internal/domains/review/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

type postgresReviewRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) ReviewRepository {
	return &postgresReviewRepository{pool: pool}
}

// =====================================================
// LIST BY RECIPE
// =====================================================

func (r *postgresReviewRepository) ListByRecipe(ctx context.Context, recipeID string) ([]*model.ReviewWithAuthor, error) {
	query := `
		SELECT
			reviews.id,
			reviews.recipe_id,
			reviews.user_id,
			reviews.text,
			COALESCE(reviews.created_at, 0),
			users.username
		FROM reviews
		LEFT JOIN users ON reviews.user_id = users.id
		WHERE reviews.recipe_id = $1
		ORDER BY reviews.created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, recipeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	reviews := []*model.ReviewWithAuthor{}
	for rows.Next() {
		review := &model.ReviewWithAuthor{}
		err := rows.Scan(
			&review.ID,
			&review.RecipeID,
			&review.UserID,
			&review.Text,
			&review.CreatedAt,
			&review.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	return reviews, nil
}

// =====================================================
// ENSURE USER
// =====================================================

func (r *postgresReviewRepository) EnsureUser(ctx context.Context, userID string, createdAt int64) error {
	query := `
		INSERT INTO users (id, created_at)
		VALUES ($1, $2)
		ON CONFLICT (id) DO NOTHING
	`

	if _, err := r.pool.Exec(ctx, query, userID, createdAt); err != nil {
		return fmt.Errorf("failed to ensure user row: %w", err)
	}

	return nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresReviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, recipe_id, user_id, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.RecipeID,
		review.UserID,
		review.Text,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// =====================================================
// GET USERNAME
// =====================================================

func (r *postgresReviewRepository) GetUsername(ctx context.Context, userID string) (*string, error) {
	var username *string

	err := r.pool.QueryRow(ctx, `SELECT username FROM users WHERE id = $1`, userID).Scan(&username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get username: %w", err)
	}

	return username, nil
}
