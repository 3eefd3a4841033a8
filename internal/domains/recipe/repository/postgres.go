package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"recipes-backend/internal/domains/ingredient"
	"recipes-backend/internal/domains/recipe/model"
	"recipes-backend/pkg/database"
)

const fkViolation = "23503"

type postgresRecipeRepository struct {
	pool     *pgxpool.Pool
	resolver ingredient.Resolver
}

func NewPostgresRecipeRepository(pool *pgxpool.Pool, resolver ingredient.Resolver) RecipeRepository {
	return &postgresRecipeRepository{pool: pool, resolver: resolver}
}

// =====================================================
// WRITE PATH
// =====================================================

func (r *postgresRecipeRepository) Create(ctx context.Context, recipe *model.Recipe) (int64, error) {
	query := `
		INSERT INTO recipes (title, instructions, image_url, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, now(), now())
		RETURNING recipe_id
	`

	return database.WithTransactionResult(ctx, r.pool, func(tx pgx.Tx) (int64, error) {
		var id int64
		err := tx.QueryRow(ctx, query,
			recipe.Title,
			recipe.Instructions,
			recipe.ImageURL,
			recipe.CategoryID,
		).Scan(&id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
				return 0, model.ErrCategoryNotFound
			}
			return 0, fmt.Errorf("failed to insert recipe: %w", err)
		}

		if err := r.insertLines(ctx, tx, id, recipe.Ingredients); err != nil {
			return 0, err
		}

		return id, nil
	})
}

func (r *postgresRecipeRepository) Update(ctx context.Context, recipe *model.Recipe) error {
	updateQuery := `
		UPDATE recipes
		SET title = $1, instructions = $2, image_url = $3, category_id = $4, updated_at = now()
		WHERE recipe_id = $5
	`
	clearQuery := `
		DELETE FROM recipe_ingredients
		WHERE recipe_id = $1
	`

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		ct, err := tx.Exec(ctx, updateQuery,
			recipe.Title,
			recipe.Instructions,
			recipe.ImageURL,
			recipe.CategoryID,
			recipe.ID,
		)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
				return model.ErrCategoryNotFound
			}
			return fmt.Errorf("failed to update recipe: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return model.ErrRecipeNotFound
		}

		// Full replace: drop every existing line, re-insert the new set.
		if _, err := tx.Exec(ctx, clearQuery, recipe.ID); err != nil {
			return fmt.Errorf("failed to clear ingredient lines: %w", err)
		}

		return r.insertLines(ctx, tx, recipe.ID, recipe.Ingredients)
	})
}

// insertLines resolves each line's ingredient name to its catalog id and
// writes the join row. Runs inside the caller's transaction.
func (r *postgresRecipeRepository) insertLines(ctx context.Context, tx pgx.Tx, recipeID int64, lines []model.IngredientLine) error {
	query := `
		INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, unit)
		VALUES ($1, $2, $3, $4)
	`

	for _, line := range lines {
		ingredientID, err := r.resolver.Resolve(ctx, tx, line.Name)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(ctx, query, recipeID, ingredientID, line.Quantity, line.Unit); err != nil {
			return fmt.Errorf("failed to insert ingredient line %q: %w", line.Name, err)
		}
	}

	return nil
}

// =====================================================
// READ PATH
// =====================================================

// aggregateQuery joins recipes with their lines and folds the lines into one
// JSON array per recipe. The LEFT JOINs keep recipes with zero lines in the
// result with an empty array.
const aggregateQuery = `
	SELECT r.recipe_id, r.title, r.instructions, r.image_url, r.category_id,
	       r.created_at, r.updated_at,
	       COALESCE(
	           json_agg(json_build_object('name', i.name, 'quantity', ri.quantity, 'unit', ri.unit))
	           FILTER (WHERE i.ingredient_id IS NOT NULL),
	           '[]'
	       ) AS ingredients
	FROM recipes r
	LEFT JOIN recipe_ingredients ri ON ri.recipe_id = r.recipe_id
	LEFT JOIN ingredients i ON i.ingredient_id = ri.ingredient_id
`

func (r *postgresRecipeRepository) GetAll(ctx context.Context) ([]model.Recipe, error) {
	query := aggregateQuery + `
	GROUP BY r.recipe_id
	ORDER BY r.recipe_id
	`
	return r.queryRecipes(ctx, query)
}

func (r *postgresRecipeRepository) GetByCategory(ctx context.Context, categoryID int64) ([]model.Recipe, error) {
	query := aggregateQuery + `
	WHERE r.category_id = $1
	GROUP BY r.recipe_id
	ORDER BY r.recipe_id
	`
	return r.queryRecipes(ctx, query, categoryID)
}

func (r *postgresRecipeRepository) GetByID(ctx context.Context, id int64) (*model.Recipe, error) {
	query := aggregateQuery + `
	WHERE r.recipe_id = $1
	GROUP BY r.recipe_id
	`

	recipe, err := scanRecipe(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("failed to get recipe: %w", err)
	}

	return recipe, nil
}

func (r *postgresRecipeRepository) queryRecipes(ctx context.Context, query string, args ...any) ([]model.Recipe, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	recipes := make([]model.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipe: %w", err)
		}
		recipes = append(recipes, *recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recipes: %w", err)
	}

	return recipes, nil
}

func scanRecipe(row pgx.Row) (*model.Recipe, error) {
	recipe := &model.Recipe{}
	var ingredientsJSON []byte

	err := row.Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Instructions,
		&recipe.ImageURL,
		&recipe.CategoryID,
		&recipe.CreatedAt,
		&recipe.UpdatedAt,
		&ingredientsJSON,
	)
	if err != nil {
		return nil, err
	}

	lines := make([]model.IngredientLine, 0)
	if err := json.Unmarshal(ingredientsJSON, &lines); err != nil {
		return nil, fmt.Errorf("failed to decode ingredient lines: %w", err)
	}
	recipe.Ingredients = lines

	return recipe, nil
}

// =====================================================
// DELETE
// =====================================================

// Delete removes the recipe and its ingredient lines in one transaction. The
// schema also cascades recipe_ingredients on recipe deletion; the explicit
// delete keeps the guarantee independent of the constraint.
func (r *postgresRecipeRepository) Delete(ctx context.Context, id int64) error {
	clearQuery := `
		DELETE FROM recipe_ingredients
		WHERE recipe_id = $1
	`
	deleteQuery := `
		DELETE FROM recipes
		WHERE recipe_id = $1
	`

	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, clearQuery, id); err != nil {
			return fmt.Errorf("failed to delete ingredient lines: %w", err)
		}

		ct, err := tx.Exec(ctx, deleteQuery, id)
		if err != nil {
			return fmt.Errorf("failed to delete recipe: %w", err)
		}
		if ct.RowsAffected() == 0 {
			return model.ErrRecipeNotFound
		}

		return nil
	})
}
