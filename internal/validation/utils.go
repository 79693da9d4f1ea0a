package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/deppfellow/restaurants-api/internal/errs"
	"github.com/go-playground/validator/v10"
)

// fieldError converts a validator failure into a user-friendly message.
func fieldError(err validator.FieldError) errs.FieldError {
	field := strings.ToLower(err.Field())
	var msg string

	switch err.Tag() {
	case "required":
		msg = "is required"

	case "min":
		if err.Type().Kind() == reflect.String {
			msg = fmt.Sprintf("must be at least %s characters", err.Param())
		} else {
			msg = fmt.Sprintf("must be at least %s", err.Param())
		}

	case "max":
		if err.Type().Kind() == reflect.String {
			msg = fmt.Sprintf("must not exceed %s characters", err.Param())
		} else {
			msg = fmt.Sprintf("must not exceed %s", err.Param())
		}

	case "oneof":
		msg = fmt.Sprintf("must be one of: %s", err.Param())

	case "numeric":
		msg = "must be a number"

	default:
		if err.Param() != "" {
			msg = fmt.Sprintf("%s: %s:%s", field, err.Tag(), err.Param())
		} else {
			msg = fmt.Sprintf("%s: %s", field, err.Tag())
		}
	}

	return errs.FieldError{
		Field: field,
		Error: msg,
	}
}
