package middleware

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	deliverycontext "plateful/internal/delivery/context"
	"plateful/internal/delivery/http/response"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/errors"
)

// ErrorMiddleware turns every error escaping a handler into the unified
// response envelope.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates the error-rendering middleware.
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{logger: logger}
}

// HandleEchoError is installed as echo.HTTPErrorHandler. Domain errors keep
// their status, code, and message; anything unexpected is logged with the
// full chain and answered as a generic 500 so internals never leak.
func (m *ErrorMiddleware) HandleEchoError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	requestID := deliverycontext.GetRequestID(c)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= 500 {
			m.logger.Error("request failed",
				slog.String("request_id", requestID),
				slog.String("error_code", appErr.ErrorCode()),
				slog.Any("error", err))
		}

		if writeErr := response.Error(c, appErr); writeErr != nil {
			m.logger.Error("failed to write error response",
				slog.String("request_id", requestID),
				slog.Any("error", writeErr))
		}

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if s, ok := httpErr.Message.(string); ok && s != "" {
			message = s
		}

		if writeErr := response.ErrorWith(c, httpErr.Code, "HTTP_ERROR", message); writeErr != nil {
			m.logger.Error("failed to write error response",
				slog.String("request_id", requestID),
				slog.Any("error", writeErr))
		}

		return
	}

	m.logger.Error("unexpected error",
		slog.String("request_id", requestID),
		slog.String("path", c.Path()),
		slog.Any("error", err))

	if writeErr := response.Error(c, domainerrors.ErrInternalError); writeErr != nil {
		m.logger.Error("failed to write error response",
			slog.String("request_id", requestID),
			slog.Any("error", writeErr))
	}
}
