package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipeshare-backend/internal/domains/recipe/model"
)

// =====================================================
// POSTGRES REPOSITORY IMPLEMENTATION
// =====================================================
// ingredient_sections is a JSON-encoded text column: encoded on every
// write, decoded on every read.

type postgresRecipeRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RecipeRepository {
	return &postgresRecipeRepository{pool: pool}
}

const recipeColumns = `
	id, name,
	COALESCE(image, ''),
	COALESCE(rating, 0),
	description,
	COALESCE(ingredient_sections, '[]'),
	COALESCE(instructions, ''),
	notes,
	COALESCE(created_at, 0),
	user_id,
	COALESCE(is_public, FALSE)
`

// scanRecipe maps one row into a Recipe, decoding the ingredient JSON.
func scanRecipe(row pgx.Row) (*model.Recipe, error) {
	recipe := &model.Recipe{}
	var rawSections string

	err := row.Scan(
		&recipe.ID,
		&recipe.Name,
		&recipe.Image,
		&recipe.Rating,
		&recipe.Description,
		&rawSections,
		&recipe.Instructions,
		&recipe.Notes,
		&recipe.CreatedAt,
		&recipe.UserID,
		&recipe.IsPublic,
	)
	if err != nil {
		return nil, err
	}

	sections, err := model.DecodeIngredientSections(rawSections)
	if err != nil {
		return nil, err
	}
	recipe.IngredientSections = sections

	return recipe, nil
}

// =====================================================
// CREATE
// =====================================================

func (r *postgresRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) error {
	rawSections, err := model.EncodeIngredientSections(recipe.IngredientSections)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO recipes (
			id, name, image, rating, description,
			ingredient_sections, instructions, notes,
			created_at, user_id, is_public
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err = r.pool.Exec(ctx, query,
		recipe.ID,
		recipe.Name,
		recipe.Image,
		recipe.Rating,
		recipe.Description,
		rawSections,
		recipe.Instructions,
		recipe.Notes,
		recipe.CreatedAt,
		recipe.UserID,
		recipe.IsPublic,
	)
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}

	return nil
}

// =====================================================
// GET BY ID
// =====================================================

func (r *postgresRecipeRepository) GetByID(ctx context.Context, id string) (*model.Recipe, error) {
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1`

	recipe, err := scanRecipe(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return recipe, nil
}

// =====================================================
// LIST
// =====================================================

func (r *postgresRecipeRepository) ListVisibleTo(ctx context.Context, userID string) ([]*model.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE user_id = $1 OR is_public = TRUE
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}
	defer rows.Close()

	recipes := []*model.Recipe{}
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list recipes: %w", err)
	}

	return recipes, nil
}

// =====================================================
// UPDATE
// =====================================================

func (r *postgresRecipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	rawSections, err := model.EncodeIngredientSections(recipe.IngredientSections)
	if err != nil {
		return err
	}

	query := `
		UPDATE recipes SET
			name = $2,
			image = $3,
			rating = $4,
			description = $5,
			ingredient_sections = $6,
			instructions = $7,
			notes = $8,
			is_public = $9
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query,
		recipe.ID,
		recipe.Name,
		recipe.Image,
		recipe.Rating,
		recipe.Description,
		rawSections,
		recipe.Instructions,
		recipe.Notes,
		recipe.IsPublic,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecipeNotFound
	}

	return nil
}

// =====================================================
// DELETE
// =====================================================

func (r *postgresRecipeRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM recipes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.ErrRecipeNotFound
	}

	return nil
}
