package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipeshare-backend/internal/domains/user/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================

// SQLSTATE for unique constraint violations.
const uniqueViolationCode = "23505"

type postgresUserRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) UserRepository {
	return &postgresUserRepository{pool: pool}
}

// =====================================================
// GET USERNAME
// =====================================================

func (r *postgresUserRepository) GetUsername(ctx context.Context, userID string) (*string, error) {
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

// =====================================================
// UNIQUENESS CHECK
// =====================================================

func (r *postgresUserRepository) IsUsernameTakenByOther(ctx context.Context, username, userID string) (bool, error) {
	var id string

	err := r.pool.QueryRow(ctx,
		`SELECT id FROM users WHERE username = $1 AND id != $2`,
		username, userID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check username: %w", err)
	}

	return true, nil
}

// =====================================================
// UPSERT
// =====================================================

func (r *postgresUserRepository) UpsertUsername(ctx context.Context, userID, username string, createdAt int64) error {
	query := `
		INSERT INTO users (id, username, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (id) DO UPDATE SET username = EXCLUDED.username
	`

	_, err := r.pool.Exec(ctx, query, userID, username, createdAt)
	if err != nil {
		// The check-then-upsert is two round-trips; a concurrent
		// request can win in between and the loser surfaces here.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return model.ErrUsernameTaken
		}
		return fmt.Errorf("failed to upsert username: %w", err)
	}

	return nil
}
