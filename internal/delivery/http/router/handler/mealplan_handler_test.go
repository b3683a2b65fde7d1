package handler

import (
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	mocks "plateful/internal/mocks/usecase"
	"plateful/internal/usecase"
)

func TestMealPlanHandler_Add_Success(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	recipeID := uuid.New()
	entryID := uuid.New()

	mealPlanUsecase := mocks.NewMockMealPlanUsecase(t)
	mealPlanUsecase.EXPECT().
		AddEntry(mock.Anything, userID, usecase.AddMealPlanEntryInput{
			RecipeID:  recipeID,
			DayOfWeek: entity.Wednesday,
			MealType:  entity.MealTypeDinner,
		}).
		Return(&entity.MealPlanEntry{
			ID:        entryID,
			UserID:    userID,
			RecipeID:  recipeID,
			DayOfWeek: entity.Wednesday,
			MealType:  entity.MealTypeDinner,
			CreatedAt: time.Now(),
		}, nil)

	e := newTestEcho()
	h := NewMealPlanHandler(mealPlanUsecase, newDiscardLogger())
	e.POST("/api/meal-plans", h.Add, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/meal-plans",
		`{"recipeId":"`+recipeID.String()+`","dayOfWeek":"wednesday","mealType":"dinner"}`, nil)

	assert.Equal(t, http.StatusCreated, rec.Code)

	data, ok := envelope["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, entryID.String(), data["id"])
	assert.Equal(t, "wednesday", data["dayOfWeek"])
	assert.Equal(t, "dinner", data["mealType"])
}

func TestMealPlanHandler_Add_MalformedRecipeID(t *testing.T) {
	t.Parallel()

	mealPlanUsecase := mocks.NewMockMealPlanUsecase(t)

	e := newTestEcho()
	h := NewMealPlanHandler(mealPlanUsecase, newDiscardLogger())
	e.POST("/api/meal-plans", h.Add, withUser(uuid.New()))

	rec, envelope := doJSON(t, e, http.MethodPost, "/api/meal-plans",
		`{"recipeId":"nope","dayOfWeek":"monday","mealType":"lunch"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, domainerrors.ErrValidationFailed.ErrorCode(), errorCode(t, envelope))
	mealPlanUsecase.AssertNotCalled(t, "AddEntry")
}

func TestMealPlanHandler_List_IncludesRecipeProjection(t *testing.T) {
	t.Parallel()

	userID := uuid.New()

	mealPlanUsecase := mocks.NewMockMealPlanUsecase(t)
	mealPlanUsecase.EXPECT().
		ListEntries(mock.Anything, userID).
		Return([]entity.MealPlanEntry{
			{
				ID:             uuid.New(),
				RecipeID:       uuid.New(),
				DayOfWeek:      entity.Monday,
				MealType:       entity.MealTypeBreakfast,
				RecipeTitle:    "Overnight Oats",
				RecipeImageURL: "https://img.example.com/oats.jpg",
			},
			{
				ID:        uuid.New(),
				RecipeID:  uuid.New(),
				DayOfWeek: entity.Sunday,
				MealType:  entity.MealTypeDinner,
			},
		}, nil)

	e := newTestEcho()
	h := NewMealPlanHandler(mealPlanUsecase, newDiscardLogger())
	e.GET("/api/meal-plans", h.List, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodGet, "/api/meal-plans", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)

	data, ok := envelope["data"].([]any)
	require.True(t, ok)
	require.Len(t, data, 2)

	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "monday", first["dayOfWeek"])
	assert.Equal(t, "Overnight Oats", first["recipeTitle"])
}

func TestMealPlanHandler_Delete_ForeignEntryAnswersNotFound(t *testing.T) {
	t.Parallel()

	userID := uuid.New()
	entryID := uuid.New()

	mealPlanUsecase := mocks.NewMockMealPlanUsecase(t)
	mealPlanUsecase.EXPECT().
		DeleteEntry(mock.Anything, userID, entryID).
		Return(domainerrors.ErrNotFound.WrapMessage("meal plan entry deletion failed"))

	e := newTestEcho()
	h := NewMealPlanHandler(mealPlanUsecase, newDiscardLogger())
	e.DELETE("/api/meal-plans/:id", h.Delete, withUser(userID))

	rec, envelope := doJSON(t, e, http.MethodDelete, "/api/meal-plans/"+entryID.String(), "", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.ErrNotFound.ErrorCode(), errorCode(t, envelope))
}
