package service

import (
	"context"

	"recipes-backend/internal/domains/recipe/model"
)

type RecipeService interface {
	Create(ctx context.Context, req *model.RecipeRequest) (*model.CreateRecipeResponse, error)
	Update(ctx context.Context, id int64, req *model.RecipeRequest) error
	GetAll(ctx context.Context) ([]*model.RecipeResponse, error)
	GetByID(ctx context.Context, id int64) (*model.RecipeResponse, error)
	GetByCategory(ctx context.Context, categoryID int64) ([]*model.RecipeResponse, error)
	Delete(ctx context.Context, id int64) error
}
