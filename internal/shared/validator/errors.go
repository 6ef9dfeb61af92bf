package validator

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// ValidationError is the single error kind returned when a write is rejected
// because a field value breaks one of its rules.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// New creates a ValidationError for field
func New(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// AsValidationError unwraps err looking for a ValidationError
func AsValidationError(err error) (*ValidationError, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsValidationError reports whether err carries a ValidationError
func IsValidationError(err error) bool {
	_, ok := AsValidationError(err)
	return ok
}

// Check runs ozzo rules against a single value and converts the first rule
// failure into a *ValidationError tagged with field.
// Internal rule errors (bad rule setup, lookup failures) are returned as-is.
func Check(field string, value any, rules ...validation.Rule) error {
	err := validation.Validate(value, rules...)
	if err == nil {
		return nil
	}

	if ve, ok := AsValidationError(err); ok {
		return ve
	}

	var ruleErr validation.Error
	if errors.As(err, &ruleErr) {
		return New(field, ruleErr.Error())
	}

	return err
}
