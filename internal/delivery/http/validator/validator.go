// Package validator adapts go-playground/validator to Echo's Validator
// interface and translates violations into the domain error taxonomy.
package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	domainerrors "plateful/internal/domain/errors"
)

// EchoValidator validates request payloads bound by Echo handlers.
type EchoValidator struct {
	validate *validator.Validate
}

// New creates an EchoValidator backed by a shared validator instance.
func New() *EchoValidator {
	return &EchoValidator{validate: validator.New()}
}

// Validate checks the struct tags on i and returns a validation error
// listing every failed field, so clients see all violations at once.
func (v *EchoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return domainerrors.ErrValidationFailed
	}

	details := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		details = append(details, describe(fieldErr))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())

	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fe.Param() + " characters"
	case "max":
		return field + " must be at most " + fe.Param() + " characters"
	case "gt":
		return field + " must be greater than " + fe.Param()
	default:
		return field + " is invalid"
	}
}
