package httputil

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorToText renders a single validation failure readable for API users.
func ValidationErrorToText(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", e.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s", e.Field(), e.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", e.Field(), e.Param())
	case "email":
		return "Invalid email format"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s", e.Field(), e.Param())
	case "len":
		return fmt.Sprintf("%s must be %s characters long", e.Field(), e.Param())
	}
	return fmt.Sprintf("%s is not valid", e.Field())
}

// validationText joins all validation failures of err. It returns an
// empty string if err is not a validation error.
func validationText(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		return ""
	}

	texts := make([]string, 0, len(errs))
	for _, e := range errs {
		texts = append(texts, ValidationErrorToText(e))
	}
	return strings.Join(texts, ", ")
}
