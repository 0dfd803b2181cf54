package dto

import (
	"errors"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type ValidationError struct {
	Field   string
	Message string
}

// Validate checks the struct tags of a request and returns one entry per
// failing field, or nil when the request is valid.
func Validate(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return []ValidationError{{Message: err.Error()}}
	}

	validationErrors := make([]ValidationError, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		validationErrors = append(validationErrors, ValidationError{
			Field:   fe.Field(),
			Message: errorMsg(fe),
		})
	}
	return validationErrors
}

func errorMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "max":
		return "Value is too long"
	case "alphanum":
		return "Only letters and digits are allowed"
	default:
		return "Invalid value"
	}
}
