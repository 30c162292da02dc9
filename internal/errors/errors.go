// Package errors provides the error types shared by stores and handlers
package errors

import (
	"fmt"
	"net/http"
)

// APIError is the base interface for errors that map to an HTTP response
type APIError interface {
	error
	HTTPStatus() int
}

// BaseError is the base implementation of APIError
type BaseError struct {
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
}

func (e *BaseError) Error() string {
	return e.Message
}

func (e *BaseError) HTTPStatus() int {
	return e.StatusCode
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	BaseError
	Resource string
}

func NewNotFoundError(resource string) *NotFoundError {
	return &NotFoundError{
		BaseError: BaseError{
			Message:    fmt.Sprintf("%s not found", resource),
			StatusCode: http.StatusNotFound,
		},
		Resource: resource,
	}
}

// ValidationError represents a validation error; Field names the offender
type ValidationError struct {
	BaseError
	Field string
}

func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		BaseError: BaseError{
			Message:    message,
			StatusCode: http.StatusBadRequest,
		},
		Field: field,
	}
}

// UnauthorizedError represents a missing or invalid session
type UnauthorizedError struct {
	BaseError
}

func NewUnauthorizedError(message string) *UnauthorizedError {
	if message == "" {
		message = "authentication required"
	}
	return &UnauthorizedError{
		BaseError: BaseError{
			Message:    message,
			StatusCode: http.StatusUnauthorized,
		},
	}
}

// PermissionDeniedError represents a wrong-role access attempt
type PermissionDeniedError struct {
	BaseError
	Role string
}

func NewPermissionDeniedError(role string) *PermissionDeniedError {
	return &PermissionDeniedError{
		BaseError: BaseError{
			Message:    "permission denied",
			StatusCode: http.StatusForbidden,
		},
		Role: role,
	}
}

// ToHTTPError converts any error to a status code and the stable
// {success, message} response body. Database errors pass their detail
// through unchanged.
func ToHTTPError(err error) (int, map[string]interface{}) {
	if err == nil {
		return http.StatusOK, nil
	}

	if ae, ok := err.(APIError); ok {
		return ae.HTTPStatus(), map[string]interface{}{
			"success": false,
			"message": ae.Error(),
		}
	}

	return http.StatusInternalServerError, map[string]interface{}{
		"success": false,
		"message": err.Error(),
	}
}
