package category

// Category groups recipes; every recipe references exactly one category.
type Category struct {
	ID   int64  `json:"categoryId"`
	Name string `json:"name"`
}
