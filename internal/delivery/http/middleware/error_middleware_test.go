package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "plateful/internal/domain/errors"
)

func renderError(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/recipes", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := NewErrorMiddleware(newDiscardLogger())
	mw.HandleEchoError(err, c)

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body
}

func TestErrorMiddleware_DatabaseExecuteError(t *testing.T) {
	t.Parallel()

	// A repository failure travels to the handler wrapped with a stack,
	// like the transaction manager propagates it.
	repoErr := domainerrors.NewDatabaseExecuteError(errors.New("connection reset"), "failed to create recipe")
	rec, body := renderError(t, errors.WithStack(repoErr))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, false, body["success"])

	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", errInfo["code"])
	assert.Equal(t, "failed to create recipe", errInfo["details"])
}

func TestErrorMiddleware_DomainErrorKeepsStatus(t *testing.T) {
	t.Parallel()

	rec, body := renderError(t, domainerrors.ErrNotFound.WrapMessage("recipe lookup failed"))

	assert.Equal(t, http.StatusNotFound, rec.Code)

	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "NOT_FOUND", errInfo["code"])
}

func TestErrorMiddleware_UnexpectedErrorNeverLeaks(t *testing.T) {
	t.Parallel()

	rec, body := renderError(t, errors.New("pq: relation does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	errInfo, ok := body["error"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "INTERNAL_ERROR", errInfo["code"])
	assert.NotContains(t, rec.Body.String(), "relation does not exist")
}
