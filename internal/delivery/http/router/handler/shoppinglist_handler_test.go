package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	mocks "plateful/internal/mocks/usecase"
)

func TestShoppingListHandler_Replace_ReturnsStoredItems(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	shoppingListUsecase := mocks.NewMockShoppingListUsecase(t)
	shoppingListUsecase.EXPECT().
		ReplaceList(mock.Anything, userID, []string{"flour", "eggs"}).
		Return([]entity.ShoppingListItem{
			{ID: uuid.New(), UserID: userID, Ingredient: "flour"},
			{ID: uuid.New(), UserID: userID, Ingredient: "eggs"},
		}, nil)

	e := newTestEcho()
	h := NewShoppingListHandler(shoppingListUsecase, newDiscardLogger())
	e.POST("/api/shopping-list", h.Replace, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/shopping-list",
		`{"ingredients":["flour","eggs"]}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "flour", first["ingredient"])
}

func TestShoppingListHandler_Replace_BlankItemRejected(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	shoppingListUsecase := mocks.NewMockShoppingListUsecase(t)
	shoppingListUsecase.EXPECT().
		ReplaceList(mock.Anything, userID, []string{"flour", "  "}).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("ingredients must not be blank"))

	e := newTestEcho()
	h := NewShoppingListHandler(shoppingListUsecase, newDiscardLogger())
	e.POST("/api/shopping-list", h.Replace, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/shopping-list",
		`{"ingredients":["flour","  "]}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(t, envelope))
}

func TestShoppingListHandler_Get_EmptyListIsAnArray(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	shoppingListUsecase := mocks.NewMockShoppingListUsecase(t)
	shoppingListUsecase.EXPECT().
		GetList(mock.Anything, userID).
		Return([]entity.ShoppingListItem{}, nil)

	e := newTestEcho()
	h := NewShoppingListHandler(shoppingListUsecase, newDiscardLogger())
	e.GET("/api/shopping-list", h.Get, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodGet, "/api/shopping-list", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}
