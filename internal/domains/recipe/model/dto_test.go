package model

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() RecipeRequest {
	return RecipeRequest{
		Title:        "Tea",
		Instructions: "Boil water",
		CategoryID:   1,
		Ingredients: []IngredientLineRequest{
			{Name: "Water", Quantity: decimal.NewFromInt(1), Unit: "cup"},
			{Name: "Tea Leaves", Quantity: decimal.NewFromInt(1), Unit: "tsp"},
		},
	}
}

func TestRecipeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RecipeRequest)
		wantErr bool
	}{
		{
			name:   "valid request",
			mutate: func(r *RecipeRequest) {},
		},
		{
			name:   "valid with image url",
			mutate: func(r *RecipeRequest) { r.ImageURL = "https://example.com/tea.jpg" },
		},
		{
			name:   "valid with zero ingredient lines",
			mutate: func(r *RecipeRequest) { r.Ingredients = nil },
		},
		{
			name:    "missing title",
			mutate:  func(r *RecipeRequest) { r.Title = "" },
			wantErr: true,
		},
		{
			name:    "missing instructions",
			mutate:  func(r *RecipeRequest) { r.Instructions = "" },
			wantErr: true,
		},
		{
			name:    "missing category",
			mutate:  func(r *RecipeRequest) { r.CategoryID = 0 },
			wantErr: true,
		},
		{
			name:    "malformed image url",
			mutate:  func(r *RecipeRequest) { r.ImageURL = "not a url" },
			wantErr: true,
		},
		{
			name:    "ingredient without name",
			mutate:  func(r *RecipeRequest) { r.Ingredients[0].Name = "" },
			wantErr: true,
		},
		{
			name:    "ingredient without unit",
			mutate:  func(r *RecipeRequest) { r.Ingredients[1].Unit = "" },
			wantErr: true,
		},
		{
			name:    "zero quantity",
			mutate:  func(r *RecipeRequest) { r.Ingredients[0].Quantity = decimal.Zero },
			wantErr: true,
		},
		{
			name:    "negative quantity",
			mutate:  func(r *RecipeRequest) { r.Ingredients[0].Quantity = decimal.NewFromInt(-2) },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)

			err := req.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRecipeRequestToEntity(t *testing.T) {
	req := validRequest()
	entity := req.ToEntity()

	require.NotNil(t, entity)
	assert.Equal(t, "Tea", entity.Title)
	assert.Equal(t, int64(1), entity.CategoryID)
	assert.Nil(t, entity.ImageURL)
	require.Len(t, entity.Ingredients, 2)
	assert.Equal(t, "Water", entity.Ingredients[0].Name)
	assert.True(t, entity.Ingredients[0].Quantity.Equal(decimal.NewFromInt(1)))

	req.ImageURL = "https://example.com/tea.jpg"
	entity = req.ToEntity()
	require.NotNil(t, entity.ImageURL)
	assert.Equal(t, "https://example.com/tea.jpg", *entity.ImageURL)
}

func TestNewRecipeResponseEmptyIngredients(t *testing.T) {
	resp := NewRecipeResponse(&Recipe{ID: 7, Title: "Toast"})

	require.NotNil(t, resp.Ingredients)
	assert.Empty(t, resp.Ingredients)
	assert.Equal(t, int64(7), resp.RecipeID)
}
