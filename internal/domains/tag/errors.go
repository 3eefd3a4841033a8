package tag

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Error codes
const (
	ErrCodeTagNotFound  = "TAG001"
	ErrCodeDuplicateTag = "TAG002"
)

var (
	ErrTagNotFound  = errors.New("tag not found")
	ErrDuplicateTag = errors.New("tag with this name already exists")
)

func GetHTTPStatusCode(err error) int {
	var vErrs validation.Errors
	switch {
	case errors.As(err, &vErrs):
		return http.StatusBadRequest
	case errors.Is(err, ErrTagNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrDuplicateTag):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
