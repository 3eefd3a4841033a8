package model

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// ============================================================
// REQUEST DTOs
// ============================================================

// IngredientLineRequest is one ingredient entry of a recipe write request.
type IngredientLineRequest struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

func (l IngredientLineRequest) Validate() error {
	return validation.ValidateStruct(&l,
		validation.Field(&l.Name,
			validation.Required.Error("ingredient name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&l.Quantity,
			validation.By(quantityPositive),
		),
		validation.Field(&l.Unit,
			validation.Required.Error("unit is required"),
			validation.Length(1, 50),
		),
	)
}

var errQuantityNotPositive = errors.New("quantity must be greater than zero")

func quantityPositive(value interface{}) error {
	q, ok := value.(decimal.Decimal)
	if !ok || q.LessThanOrEqual(decimal.Zero) {
		return errQuantityNotPositive
	}
	return nil
}

// RecipeRequest is the body of POST /v1/recipes and PUT /v1/recipes/:id.
// A recipe owns zero or more ingredient lines; on update the line set is
// replaced wholesale, never diffed.
type RecipeRequest struct {
	Title        string                  `json:"title"`
	Instructions string                  `json:"instructions"`
	ImageURL     string                  `json:"imageUrl"`
	CategoryID   int64                   `json:"categoryId"`
	Ingredients  []IngredientLineRequest `json:"ingredients"`
}

// Validate is the single validation policy for every recipe write entry
// point. It runs before any transaction is opened.
func (r RecipeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.Instructions,
			validation.Required.Error("instructions are required"),
		),
		validation.Field(&r.ImageURL,
			validation.When(r.ImageURL != "", is.URL.Error("imageUrl must be a valid URL")),
		),
		validation.Field(&r.CategoryID,
			validation.Required.Error("categoryId is required"),
			validation.Min(int64(1)).Error("categoryId must be a positive id"),
		),
		validation.Field(&r.Ingredients),
	)
}

// ToEntity converts the request into the aggregate handed to the repository.
func (r RecipeRequest) ToEntity() *Recipe {
	var imageURL *string
	if r.ImageURL != "" {
		u := r.ImageURL
		imageURL = &u
	}

	lines := make([]IngredientLine, 0, len(r.Ingredients))
	for _, l := range r.Ingredients {
		lines = append(lines, IngredientLine{
			Name:     l.Name,
			Quantity: l.Quantity,
			Unit:     l.Unit,
		})
	}

	return &Recipe{
		Title:        r.Title,
		Instructions: r.Instructions,
		ImageURL:     imageURL,
		CategoryID:   r.CategoryID,
		Ingredients:  lines,
	}
}

// ============================================================
// RESPONSE DTOs
// ============================================================

type RecipeResponse struct {
	RecipeID     int64            `json:"recipeId"`
	Title        string           `json:"title"`
	Instructions string           `json:"instructions"`
	ImageURL     *string          `json:"imageUrl"`
	CategoryID   int64            `json:"categoryId"`
	Ingredients  []IngredientLine `json:"ingredients"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`
}

type CreateRecipeResponse struct {
	RecipeID int64 `json:"recipeId"`
}

func NewRecipeResponse(r *Recipe) *RecipeResponse {
	ingredients := r.Ingredients
	if ingredients == nil {
		ingredients = []IngredientLine{}
	}

	return &RecipeResponse{
		RecipeID:     r.ID,
		Title:        r.Title,
		Instructions: r.Instructions,
		ImageURL:     r.ImageURL,
		CategoryID:   r.CategoryID,
		Ingredients:  ingredients,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}
