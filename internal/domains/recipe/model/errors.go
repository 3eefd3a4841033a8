package model

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"recipes-backend/internal/domains/ingredient"
)

// Error codes
const (
	ErrCodeRecipeNotFound      = "RCP001"
	ErrCodeCategoryNotFound    = "RCP002"
	ErrCodeNoRecipesInCategory = "RCP003"
)

var (
	ErrRecipeNotFound      = errors.New("recipe not found")
	ErrCategoryNotFound    = errors.New("referenced category does not exist")
	ErrNoRecipesInCategory = errors.New("no recipes found for this category")
)

// GetHTTPStatusCode maps domain errors to HTTP status codes for handlers.
func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrRecipeNotFound),
		errors.Is(err, ErrCategoryNotFound),
		errors.Is(err, ErrNoRecipesInCategory):
		return http.StatusNotFound
	case errors.Is(err, ingredient.ErrResolveConflict):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
