package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	RegisterCustomValidations(validate)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateVar checks a single value against a tag expression, e.g.
// ValidateVar(lat, "lat") or ValidateVar(email, "required,email").
func ValidateVar(v interface{}, tag string) error {
	return validate.Var(v, tag)
}
