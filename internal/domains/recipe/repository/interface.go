package repository

import (
	"context"

	"recipes-backend/internal/domains/recipe/model"
)

// RecipeRepository owns every mutation of recipe and recipe_ingredients rows.
// Create and Update run as one transaction: recipe upsert, ingredient
// resolution and join-row replacement either all commit or none do.
type RecipeRepository interface {
	Create(ctx context.Context, recipe *model.Recipe) (int64, error)
	Update(ctx context.Context, recipe *model.Recipe) error
	GetAll(ctx context.Context) ([]model.Recipe, error)
	GetByID(ctx context.Context, id int64) (*model.Recipe, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]model.Recipe, error)
	Delete(ctx context.Context, id int64) error
}
