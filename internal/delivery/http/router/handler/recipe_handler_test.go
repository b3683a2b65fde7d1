package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plateful/internal/delivery/http/middleware"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	mocks "plateful/internal/mocks/usecase"
	"plateful/internal/usecase"
)

// withUser simulates the auth middleware for routes under test.
func withUser(userID uuid.UUID) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set(middleware.ContextKeyUserID, userID)

			return next(c)
		}
	}
}

func TestRecipeHandler_Save_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	recipeID := uuid.New()

	recipeUsecase := mocks.NewMockRecipeUsecase(t)
	recipeUsecase.EXPECT().
		SaveRecipe(mock.Anything, userID, usecase.SaveRecipeInput{
			SourceID:    716429,
			Title:       "Pasta with Garlic",
			ImageURL:    "https://img.example.com/716429.jpg",
			Ingredients: []string{"pasta", "garlic"},
		}).
		Return(&entity.Recipe{
			ID:          recipeID,
			UserID:      userID,
			SourceID:    716429,
			Title:       "Pasta with Garlic",
			ImageURL:    "https://img.example.com/716429.jpg",
			Ingredients: []string{"pasta", "garlic"},
			CreatedAt:   time.Now(),
		}, nil)

	e := newTestEcho()
	h := NewRecipeHandler(recipeUsecase, newDiscardLogger())
	e.POST("/api/recipes", h.Save, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/recipes",
		`{"sourceId":716429,"title":"Pasta with Garlic","imageUrl":"https://img.example.com/716429.jpg","ingredients":["pasta","garlic"]}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, recipeID.String(), data["id"])
	assert.Equal(t, "Pasta with Garlic", data["title"])
}

func TestRecipeHandler_Save_MissingTitle(t *testing.T) {
	t.Parallel()

	recipeUsecase := mocks.NewMockRecipeUsecase(t)

	e := newTestEcho()
	h := NewRecipeHandler(recipeUsecase, newDiscardLogger())
	e.POST("/api/recipes", h.Save, withUser(uuid.New()))

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/recipes",
		`{"sourceId":716429}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(t, envelope))
	recipeUsecase.AssertNotCalled(t, "SaveRecipe")
}

func TestRecipeHandler_Delete_MalformedIDAnswersNotFound(t *testing.T) {
	t.Parallel()

	recipeUsecase := mocks.NewMockRecipeUsecase(t)

	e := newTestEcho()
	h := NewRecipeHandler(recipeUsecase, newDiscardLogger())
	e.DELETE("/api/recipes/:id", h.Delete, withUser(uuid.New()))

	rec, envelope := doJSON(t, e, http.MethodDelete, "/api/recipes/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), errorCode(t, envelope))
	recipeUsecase.AssertNotCalled(t, "DeleteRecipe")
}

func TestRecipeHandler_Delete_ForeignRecipeAnswersNotFound(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	recipeID := uuid.New()

	recipeUsecase := mocks.NewMockRecipeUsecase(t)
	recipeUsecase.EXPECT().
		DeleteRecipe(mock.Anything, userID, recipeID).
		Return(domainerrors.ErrNotFound.WrapMessage("recipe deletion failed"))

	e := newTestEcho()
	h := NewRecipeHandler(recipeUsecase, newDiscardLogger())
	e.DELETE("/api/recipes/:id", h.Delete, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodDelete, "/api/recipes/"+recipeID.String(), "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), errorCode(t, envelope))
}

func TestRecipeHandler_Search_ForwardsUpstreamBody(t *testing.T) {
	t.Parallel()

	upstream := json.RawMessage(`[{"id":716429,"title":"Pasta with Garlic"}]`)

	recipeUsecase := mocks.NewMockRecipeUsecase(t)
	recipeUsecase.EXPECT().
		SearchByIngredients(mock.Anything, "tomato,basil", 2).
		Return(upstream, nil)

	e := newTestEcho()
	h := NewRecipeHandler(recipeUsecase, newDiscardLogger())
	e.GET("/api/recipes/search/:ingredients", h.Search)

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/search/tomato,basil?page=2", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(upstream), rec.Body.String())
}

func TestRecipeHandler_Search_RejectsBadPage(t *testing.T) {
	t.Parallel()

	recipeUsecase := mocks.NewMockRecipeUsecase(t)

	e := newTestEcho()
	h := NewRecipeHandler(recipeUsecase, newDiscardLogger())
	e.GET("/api/recipes/search/:ingredients", h.Search)

	rec, envelope := doJSON(t, e, http.MethodGet, "/api/recipes/search/tomato?page=zero", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(t, envelope))
	recipeUsecase.AssertNotCalled(t, "SearchByIngredients")
}

func TestRecipeHandler_Details_ForwardsUpstreamBody(t *testing.T) {
	t.Parallel()

	upstream := json.RawMessage(`{"id":716429,"title":"Pasta with Garlic","readyInMinutes":25}`)

	recipeUsecase := mocks.NewMockRecipeUsecase(t)
	recipeUsecase.EXPECT().
		GetRecipeDetails(mock.Anything, int64(716429)).
		Return(upstream, nil)

	e := newTestEcho()
	h := NewRecipeHandler(recipeUsecase, newDiscardLogger())
	e.GET("/api/recipes/details/:id", h.Details)

	req := httptest.NewRequest(http.MethodGet, "/api/recipes/details/716429", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(upstream), rec.Body.String())
}

func TestRecipeHandler_Details_RejectsNonNumericID(t *testing.T) {
	t.Parallel()

	recipeUsecase := mocks.NewMockRecipeUsecase(t)

	e := newTestEcho()
	h := NewRecipeHandler(recipeUsecase, newDiscardLogger())
	e.GET("/api/recipes/details/:id", h.Details)

	rec, envelope := doJSON(t, e, http.MethodGet, "/api/recipes/details/abc", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(t, envelope))
	recipeUsecase.AssertNotCalled(t, "GetRecipeDetails")
}
