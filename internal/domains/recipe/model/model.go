package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Recipe is the aggregate the API works in: the recipe row plus its full
// ingredient-line set. Timestamps are server-assigned; updated_at is refreshed
// on every successful update and untouched by reads.
type Recipe struct {
	ID           int64
	Title        string
	Instructions string
	ImageURL     *string
	CategoryID   int64
	Ingredients  []IngredientLine
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IngredientLine is one join-table row binding the recipe to a catalog
// ingredient with a quantity and unit. Only the name travels through the API;
// the catalog id stays internal to the write path.
//
// The json tags match both the API shape and the json_agg output of the
// aggregate read query, so lines unmarshal straight from the database.
type IngredientLine struct {
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}
