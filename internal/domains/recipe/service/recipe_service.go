package service

import (
	"context"
	"fmt"

	"recipes-backend/internal/domains/recipe/model"
	"recipes-backend/internal/domains/recipe/repository"
	"recipes-backend/pkg/logger"
)

type recipeServiceImpl struct {
	repository repository.RecipeRepository
}

func NewRecipeService(repo repository.RecipeRepository) RecipeService {
	return &recipeServiceImpl{repository: repo}
}

func (s *recipeServiceImpl) Create(ctx context.Context, req *model.RecipeRequest) (*model.CreateRecipeResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("create recipe: invalid request")
	}

	// Validation short-circuits before any transaction is opened.
	if err := req.Validate(); err != nil {
		return nil, err
	}

	id, err := s.repository.Create(ctx, req.ToEntity())
	if err != nil {
		logger.Error("create recipe failed", err)
		return nil, err
	}

	return &model.CreateRecipeResponse{RecipeID: id}, nil
}

func (s *recipeServiceImpl) Update(ctx context.Context, id int64, req *model.RecipeRequest) error {
	if req == nil {
		return fmt.Errorf("update recipe: invalid request")
	}

	if err := req.Validate(); err != nil {
		return err
	}

	entity := req.ToEntity()
	entity.ID = id

	if err := s.repository.Update(ctx, entity); err != nil {
		logger.Error("update recipe failed", err)
		return err
	}

	return nil
}

func (s *recipeServiceImpl) GetAll(ctx context.Context) ([]*model.RecipeResponse, error) {
	recipes, err := s.repository.GetAll(ctx)
	if err != nil {
		logger.Error("get recipes failed", err)
		return nil, err
	}

	return toResponses(recipes), nil
}

func (s *recipeServiceImpl) GetByID(ctx context.Context, id int64) (*model.RecipeResponse, error) {
	recipe, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return model.NewRecipeResponse(recipe), nil
}

// GetByCategory returns the recipes of a category; an empty result is
// reported as not found.
func (s *recipeServiceImpl) GetByCategory(ctx context.Context, categoryID int64) ([]*model.RecipeResponse, error) {
	recipes, err := s.repository.GetByCategory(ctx, categoryID)
	if err != nil {
		logger.Error("get recipes by category failed", err)
		return nil, err
	}

	if len(recipes) == 0 {
		return nil, model.ErrNoRecipesInCategory
	}

	return toResponses(recipes), nil
}

func (s *recipeServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

func toResponses(recipes []model.Recipe) []*model.RecipeResponse {
	responses := make([]*model.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		responses = append(responses, model.NewRecipeResponse(&recipes[i]))
	}
	return responses
}
