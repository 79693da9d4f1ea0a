// Package validation contains the logic for validating
// request data.
//
// Requests are bound from path and query parameters by echo, then checked
// by their own Validate method. Failures become 400 responses whose
// message is safe to show to the client.
package validation

import (
	"errors"
	"fmt"

	"github.com/deppfellow/restaurants-api/internal/errs"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validatable is implemented by request payload types that know how to validate themselves.
type Validatable interface {
	Validate() error
}

// CustomValidationError is a validation issue that struct tags cannot
// express. Message is shown to the client as-is.
type CustomValidationError struct {
	Field   string
	Message string
}

// CustomValidationErrors is a slice of custom validation errors that satisfies error.
type CustomValidationErrors []CustomValidationError

func (c CustomValidationErrors) Error() string {
	if len(c) == 0 {
		return "Validation failed"
	}
	return c[0].Message
}

// Invalid is shorthand for a single custom validation error.
func Invalid(field, message string) CustomValidationErrors {
	return CustomValidationErrors{{Field: field, Message: message}}
}

var validate = validator.New()

// Struct runs the struct-tag rules over v.
func Struct(v any) error {
	return validate.Struct(v)
}

// BindAndValidate binds path and query parameters into payload and
// validates it. Any failure is returned as a 400 *errs.HTTPError.
//
// payload must be a pointer so echo can populate it.
func BindAndValidate(c echo.Context, payload Validatable) error {
	if err := c.Bind(payload); err != nil {
		return errs.NewBadRequestError(bindErrorMessage(err), false, nil, nil, nil)
	}

	if err := payload.Validate(); err != nil {
		msg, fieldErrors := extractValidationError(err)
		return errs.NewBadRequestError(msg, true, nil, fieldErrors, nil)
	}

	return nil
}

// bindErrorMessage pulls the client-facing part out of an echo bind error.
func bindErrorMessage(err error) string {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return fmt.Sprint(he.Message)
	}
	return "Invalid request"
}

// extractValidationError returns the response message and per-field
// errors for err.
//
// Custom errors carry their own message, and the first one becomes the
// response message. Tag failures use a generic message and describe each
// field in the errors list.
func extractValidationError(err error) (string, []errs.FieldError) {
	var custom CustomValidationErrors
	if errors.As(err, &custom) {
		fieldErrors := make([]errs.FieldError, 0, len(custom))
		for _, e := range custom {
			fieldErrors = append(fieldErrors, errs.FieldError{
				Field: e.Field,
				Error: e.Message,
			})
		}
		return custom.Error(), fieldErrors
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fieldErrors := make([]errs.FieldError, 0, len(validationErrors))
		for _, fe := range validationErrors {
			fieldErrors = append(fieldErrors, fieldError(fe))
		}
		return "Validation failed", fieldErrors
	}

	return err.Error(), nil
}
