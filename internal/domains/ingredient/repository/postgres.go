package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipes-backend/internal/domains/ingredient"
)

// resolveAttempts bounds the insert-then-lookup loop. Under read-committed
// isolation the lookup after a conflict sees the winner's committed row on the
// first retry; the bound guards against pathological schedules (e.g. the
// winner rolling back between our insert and lookup).
const resolveAttempts = 3

type postgresIngredientRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresIngredientRepository(pool *pgxpool.Pool) ingredient.Repository {
	return &postgresIngredientRepository{pool: pool}
}

func (r *postgresIngredientRepository) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	query := `
		SELECT ingredient_id, name
		FROM ingredients
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list ingredients: %w", err)
	}
	defer rows.Close()

	ingredients := make([]ingredient.Ingredient, 0)
	for rows.Next() {
		var ing ingredient.Ingredient
		if err := rows.Scan(&ing.ID, &ing.Name); err != nil {
			return nil, fmt.Errorf("failed to scan ingredient: %w", err)
		}
		ingredients = append(ingredients, ing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ingredients: %w", err)
	}

	return ingredients, nil
}

type resolver struct{}

// NewResolver returns the catalog resolver used by the recipe write path.
func NewResolver() ingredient.Resolver {
	return resolver{}
}

// Resolve inserts the name and returns the new id, falling back to a lookup
// when the insert is a no-op because the name already exists. The unique
// constraint on ingredients.name guarantees at most one row per name even when
// concurrent transactions race on the same new name: exactly one insert wins,
// the loser observes the winner's row once it is committed.
func (resolver) Resolve(ctx context.Context, q ingredient.Querier, name string) (int64, error) {
	insert := `
		INSERT INTO ingredients (name)
		VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING ingredient_id
	`
	lookup := `
		SELECT ingredient_id
		FROM ingredients
		WHERE name = $1
	`

	var id int64
	for attempt := 0; attempt < resolveAttempts; attempt++ {
		err := q.QueryRow(ctx, insert, name).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("failed to insert ingredient %q: %w", name, err)
		}

		// Insert was a no-op: another transaction owns the name. Look up
		// its row; a fresh statement snapshot sees it once committed.
		err = q.QueryRow(ctx, lookup, name).Scan(&id)
		if err == nil {
			return id, nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return 0, fmt.Errorf("failed to look up ingredient %q: %w", name, err)
		}
	}

	return 0, ingredient.ErrResolveConflict
}
