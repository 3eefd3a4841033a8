package service

import (
	"context"
	"fmt"

	"recipes-backend/internal/domains/ingredient"
)

type ingredientServiceImpl struct {
	repository ingredient.Repository
}

func NewIngredientService(repo ingredient.Repository) ingredient.Service {
	return &ingredientServiceImpl{repository: repo}
}

func (s *ingredientServiceImpl) List(ctx context.Context) ([]ingredient.Ingredient, error) {
	ingredients, err := s.repository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ingredients: %w", err)
	}
	return ingredients, nil
}
