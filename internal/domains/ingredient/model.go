package ingredient

// Ingredient is one row of the shared ingredient catalog. Names are unique;
// every recipe line referencing the same name points at the same row.
type Ingredient struct {
	ID   int64  `json:"ingredientId"`
	Name string `json:"name"`
}
