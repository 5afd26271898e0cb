package utils

import "github.com/go-playground/validator/v10"

var validate = validator.New()

// ValidateStruct runs the validator tags on a request payload, returning a
// typed validation error the response boundary maps to 400.
func ValidateStruct(payload interface{}) *APIError {
	if err := validate.Struct(payload); err != nil {
		return NewValidationError(err.Error())
	}
	return nil
}
