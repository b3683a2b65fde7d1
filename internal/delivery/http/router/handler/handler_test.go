package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"plateful/internal/delivery/http/middleware"
	"plateful/internal/delivery/http/validator"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestEcho builds an Echo instance with the production validator and
// error handler, so handler tests exercise the same rendering pipeline as a
// live server.
func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(newDiscardLogger()).HandleEchoError

	return e
}

// doJSON performs a request against the Echo instance and decodes the
// envelope.
func doJSON(t *testing.T, e *echo.Echo, method, target, body string, headers map[string]string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return rec, envelope
}

func errorCode(t *testing.T, envelope map[string]any) string {
	t.Helper()

	errInfo, ok := envelope["error"].(map[string]any)
	require.True(t, ok, "envelope has no error object: %v", envelope)

	code, ok := errInfo["code"].(string)
	require.True(t, ok)

	return code
}
