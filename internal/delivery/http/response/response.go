// Package response defines the JSON envelope every HTTP endpoint answers with.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"

	domainerrors "plateful/internal/domain/errors"
)

// Response is the unified envelope for all API responses.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo carries machine-readable error details alongside the message.
type ErrorInfo struct {
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

// OK writes a 200 envelope with the given payload.
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Created writes a 201 envelope with the given payload.
func Created(c echo.Context, data any) error {
	return Success(c, http.StatusCreated, data)
}

// Success writes a success envelope with the given status and payload.
func Success(c echo.Context, status int, data any) error {
	return c.JSON(status, Response{
		Success: true,
		Code:    status,
		Message: "success",
		Data:    data,
	})
}

// Error writes an error envelope derived from an AppError.
func Error(c echo.Context, appErr domainerrors.AppError) error {
	return c.JSON(appErr.HTTPCode(), Response{
		Success: false,
		Code:    appErr.HTTPCode(),
		Message: appErr.Message(),
		Error: &ErrorInfo{
			Code:    appErr.ErrorCode(),
			Details: appErr.Details(),
		},
	})
}

// ErrorWith writes an error envelope from raw parts, for failures that do
// not originate from a domain error.
func ErrorWith(c echo.Context, status int, code string, message string) error {
	return c.JSON(status, Response{
		Success: false,
		Code:    status,
		Message: message,
		Error:   &ErrorInfo{Code: code},
	})
}
