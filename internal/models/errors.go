package models

import (
	"errors"
	"fmt"
	"log/slog"

	"newsline/internal/observability"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse represents a standardized API error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// AppError represents a custom application error.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Error codes used across the application.
const (
	CodeValidation       = "VALIDATION_ERROR"
	CodeConflict         = "CONFLICT"
	CodeUnauthorized     = "UNAUTHORIZED"
	CodeNotFound         = "NOT_FOUND"
	CodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	CodeInternal         = "INTERNAL_ERROR"
)

// Predefined error constructors
func NewValidationError(message string) *AppError {
	return &AppError{Code: CodeValidation, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: CodeConflict, Message: message}
}

func NewUnauthorizedError(message string) *AppError {
	return &AppError{Code: CodeUnauthorized, Message: message}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with ID %v not found", resource, id),
	}
}

func NewMethodNotAllowedError() *AppError {
	return &AppError{Code: CodeMethodNotAllowed, Message: "Method not allowed"}
}

func NewInternalError(err error) *AppError {
	return &AppError{Code: CodeInternal, Message: "Internal server error", Err: err}
}

// HTTPStatus maps an error to the HTTP status it should be reported with.
func HTTPStatus(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case CodeValidation:
			return fiber.StatusBadRequest
		case CodeConflict:
			return fiber.StatusConflict
		case CodeUnauthorized:
			return fiber.StatusUnauthorized
		case CodeNotFound:
			return fiber.StatusNotFound
		case CodeMethodNotAllowed:
			return fiber.StatusMethodNotAllowed
		}
	}
	return fiber.StatusInternalServerError
}

// RespondWithError writes a standardized error response. Internal failures are
// reported with a generic message; the underlying cause is logged, never sent
// to the caller.
func RespondWithError(c *fiber.Ctx, err error) error {
	status := HTTPStatus(err)

	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Code != CodeInternal {
		return c.Status(status).JSON(ErrorResponse{Error: appErr.Message, Code: appErr.Code})
	}

	observability.GlobalLogger.Error("internal error",
		slog.String("path", c.Path()),
		slog.String("method", c.Method()),
		slog.String("error", err.Error()),
	)
	return c.Status(status).JSON(ErrorResponse{Error: "Internal server error", Code: CodeInternal})
}
