package author

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/validator"
)

// Validation messages
const (
	MsgNameRequired = "Name field is required."
	MsgNameNotUniq  = "Name must be unique."
	MsgPhoneDigits  = "Phone number must be exactly 10 digits."
)

// Field names used in ValidationError
const (
	FieldName        = "name"
	FieldPhoneNumber = "phone_number"
)

var (
	// Business Rule Errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrInvalidID      = errors.New("invalid author id")
)

// ErrDuplicateName is returned when the name is already used by another author
func ErrDuplicateName() *validator.ValidationError {
	return validator.New(FieldName, MsgNameNotUniq)
}

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case validator.IsValidationError(err):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrAuthorNotFound):
		return "AUTHOR_NOT_FOUND"
	case errors.Is(err, ErrInvalidID):
		return "INVALID_ID"
	default:
		return "INTERNAL_ERROR"
	}
}

// ToHTTPStatus converts error to HTTP status code
func ToHTTPStatus(err error) int {
	switch {
	case validator.IsValidationError(err), errors.Is(err, ErrInvalidID):
		return http.StatusBadRequest
	case errors.Is(err, ErrAuthorNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
