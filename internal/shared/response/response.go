package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"blog-backend/internal/shared/validator"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// Success responses
func Success(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	ErrorWithDetails(c, statusCode, code, message, nil)
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// FromError writes err with the status and code chosen by the caller's
// domain mapping. Validation failures carry the offending field.
// 5xx responses hide the underlying error text.
func FromError(c *gin.Context, statusCode int, code string, err error) {
	if ve, ok := validator.AsValidationError(err); ok {
		ErrorWithDetails(c, statusCode, code, ve.Message, gin.H{"field": ve.Field})
		return
	}

	if statusCode >= http.StatusInternalServerError {
		_ = c.Error(err)
		ErrorResponse(c, statusCode, code, "Internal server error")
		return
	}

	ErrorResponse(c, statusCode, code, err.Error())
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, "BAD_REQUEST", message)
}
