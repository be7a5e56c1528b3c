package errors

import "net/http"

// AppError carries the HTTP status a handler error should surface with.
// Handlers attach one via c.Error and let the error middleware render it.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

// New creates an AppError with an explicit status code
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

func NotFound(msg string) *AppError {
	return New(http.StatusNotFound, msg)
}

func Forbidden(msg string) *AppError {
	return New(http.StatusForbidden, msg)
}

func Internal(msg string) *AppError {
	return New(http.StatusInternalServerError, msg)
}
