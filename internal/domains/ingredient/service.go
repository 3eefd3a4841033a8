package ingredient

import "context"

// Service exposes the read-only catalog surface.
type Service interface {
	List(ctx context.Context) ([]Ingredient, error)
}
