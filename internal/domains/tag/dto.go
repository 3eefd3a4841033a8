package tag

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// TagRequest is the body of POST /v1/tags and PUT /v1/tags/:id.
type TagRequest struct {
	Name string `json:"name"`
}

func (r TagRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 255),
		),
	)
}
