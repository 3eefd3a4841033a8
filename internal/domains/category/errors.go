package category

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error codes
const (
	ErrCodeCategoryNotFound  = "CAT001"
	ErrCodeDuplicateCategory = "CAT002"
	ErrCodeCategoryInUse     = "CAT003"
)

var (
	ErrCategoryNotFound  = errors.New("category not found")
	ErrDuplicateCategory = errors.New("category with this name already exists")
	ErrCategoryInUse     = errors.New("category is still referenced by recipes")
)

func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateCategory), errors.Is(err, ErrCategoryInUse):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
