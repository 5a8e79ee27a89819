// Package response defines the JSON shapes returned by the HTTP layer.
// Successes return the payload directly; failures always return
// {"error": "..."} with a user-facing message.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorBody is the single error envelope every failing endpoint returns.
type ErrorBody struct {
	Error string `json:"error"`
}

// JSON writes a success payload with the given status.
func JSON(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, data)
}

// Created writes an empty 201. Registration echoes no credential material.
func Created(c echo.Context) error {
	return c.NoContent(http.StatusCreated)
}

// Error writes the error envelope with the given status.
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, ErrorBody{Error: message})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// InternalError 500 error with an opaque message
func InternalError(c echo.Context) error {
	return Error(c, http.StatusInternalServerError, "Internal server error")
}
