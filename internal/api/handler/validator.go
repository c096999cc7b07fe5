package handler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sparkmeet/identity-api/internal/core/domain"
)

// echoValidator wraps go-playground/validator so Echo can call
// c.Validate(req). Failures come out as domain.ValidationErrors so request
// validation and store validation share one response shape.
type echoValidator struct {
	v *validator.Validate
}

// NewValidator returns an echoValidator ready to be assigned to
// echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{v: validator.New()}
}

// Validate satisfies the echo.Validator interface.
func (ev *echoValidator) Validate(i any) error {
	err := ev.v.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	out := make(domain.ValidationErrors, 0, len(ve))
	for _, fe := range ve {
		out = append(out, fieldError(fe))
	}
	return out
}

// fieldError converts a single validator failure into a field descriptor.
func fieldError(fe validator.FieldError) domain.ValidationError {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return domain.ValidationError{Field: field, Message: field + " is required"}
	case "min":
		return domain.ValidationError{Field: field, Message: fmt.Sprintf("%s must be at least %s characters", field, fe.Param())}
	case "max":
		return domain.ValidationError{Field: field, Message: fmt.Sprintf("%s must be at most %s characters", field, fe.Param())}
	case "oneof":
		return domain.ValidationError{Field: field, Message: fmt.Sprintf("%s must be one of: %s", field, fe.Param())}
	case "datetime":
		return domain.ValidationError{Field: field, Message: fmt.Sprintf("%s must be a date in %s format", field, fe.Param())}
	default:
		return domain.ValidationError{Field: field, Message: fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())}
	}
}
