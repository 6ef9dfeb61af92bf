package post

import (
	"errors"
	"net/http"

	"blog-backend/internal/shared/validator"
)

// Validation messages
const (
	MsgTitleMarker     = "Title must contain at least one of: 'Won't Believe', 'Secret', 'Top', 'Guess'"
	MsgContentTooShort = "Post content must be at least 250 characters long."
	MsgSummaryTooLong  = "Post summary must be a maximum of 250 characters."
	MsgCategory        = "Category must be either 'Fiction' or 'Non-Fiction'."
)

// Field names used in ValidationError
const (
	FieldTitle    = "title"
	FieldContent  = "content"
	FieldSummary  = "summary"
	FieldCategory = "category"
)

var (
	ErrPostNotFound = errors.New("post not found")
	ErrInvalidID    = errors.New("invalid post id")
)

// ToErrorCode converts error to API error code
func ToErrorCode(err error) string {
	switch {
	case validator.IsValidationError(err):
		return "VALIDATION_ERROR"
	case errors.Is(err, ErrPostNotFound):
		return "POST_NOT_FOUND"
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
	case errors.Is(err, ErrPostNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
