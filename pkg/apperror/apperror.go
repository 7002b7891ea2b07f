package apperror

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ErrorType string

const (
	NotFoundError     ErrorType = "not_found"
	ValidationError   ErrorType = "validation"
	ConflictError     ErrorType = "conflict"
	UnauthorizedError ErrorType = "unauthorized"
	ForbiddenError    ErrorType = "forbidden"
	ServerError       ErrorType = "internal"
)

// AppError is the error every service returns across the handler boundary.
// Message is safe to show to the client, Err is the wrapped cause and stays
// in the logs only.
type AppError struct {
	Type    ErrorType
	Message string
	Status  int
	Fields  map[string]string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewError(t ErrorType, message string, status int, err error) *AppError {
	return &AppError{Type: t, Message: message, Status: status, Err: err}
}

func NotFound(message string) *AppError {
	return NewError(NotFoundError, message, http.StatusNotFound, nil)
}

func Validation(message string) *AppError {
	return NewError(ValidationError, message, http.StatusBadRequest, nil)
}

// ValidationFields carries a field -> message map, rendered as the response
// body instead of a single detail line.
func ValidationFields(fields map[string]string) *AppError {
	e := NewError(ValidationError, "validation failed", http.StatusBadRequest, nil)
	e.Fields = fields
	return e
}

func Conflict(message string) *AppError {
	return NewError(ConflictError, message, http.StatusConflict, nil)
}

func Unauthorized(message string) *AppError {
	return NewError(UnauthorizedError, message, http.StatusUnauthorized, nil)
}

func Forbidden(message string) *AppError {
	return NewError(ForbiddenError, message, http.StatusForbidden, nil)
}

func Internal(err error) *AppError {
	return NewError(ServerError, "internal server error", http.StatusInternalServerError, err)
}

// Respond maps err onto the wire format: {"detail": ...} for single-message
// failures, a field map for field-level validation errors. Unknown errors
// become a fixed generic 500 body, the cause is never echoed back.
func Respond(c *gin.Context, err error) {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		appErr = Internal(err)
	}

	if appErr.Type == ServerError {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "internal server error"})
		return
	}

	if len(appErr.Fields) > 0 {
		c.JSON(appErr.Status, gin.H{"errors": appErr.Fields})
		return
	}

	c.JSON(appErr.Status, gin.H{"detail": appErr.Message})
}
