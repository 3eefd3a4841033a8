package image

import "errors"

var (
	ErrUnsupportedType = errors.New("only image uploads are supported")
	ErrTooLarge        = errors.New("image exceeds the maximum allowed size")
)
