package category

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CategoryRequest is the body of POST /v1/categories and PUT /v1/categories/:id.
type CategoryRequest struct {
	Name string `json:"name"`
}

func (r CategoryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}
