package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"plateful/internal/delivery/http/response"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/usecase"
)

// MealPlanHandler serves the weekly meal plan.
type MealPlanHandler struct {
	mealPlanUsecase usecase.MealPlanUsecase
	logger          *slog.Logger
}

// NewMealPlanHandler creates a MealPlanHandler.
func NewMealPlanHandler(mealPlanUsecase usecase.MealPlanUsecase, logger *slog.Logger) *MealPlanHandler {
	return &MealPlanHandler{
		mealPlanUsecase: mealPlanUsecase,
		logger:          logger,
	}
}

type addMealPlanEntryRequest struct {
	RecipeID  string `json:"recipeId" validate:"required"`
	DayOfWeek string `json:"dayOfWeek" validate:"required"`
	MealType  string `json:"mealType" validate:"required"`
}

type mealPlanEntryResponse struct {
	ID             string    `json:"id"`
	RecipeID       string    `json:"recipeId"`
	DayOfWeek      string    `json:"dayOfWeek"`
	MealType       string    `json:"mealType"`
	RecipeTitle    string    `json:"recipeTitle,omitempty"`
	RecipeImageURL string    `json:"recipeImageUrl,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toMealPlanEntryResponse(entry *entity.MealPlanEntry) mealPlanEntryResponse {
	return mealPlanEntryResponse{
		ID:             entry.ID.String(),
		RecipeID:       entry.RecipeID.String(),
		DayOfWeek:      entry.DayOfWeek.String(),
		MealType:       entry.MealType.String(),
		RecipeTitle:    entry.RecipeTitle,
		RecipeImageURL: entry.RecipeImageURL,
		CreatedAt:      entry.CreatedAt,
	}
}

// Add handles POST /api/meal-plans.
func (h *MealPlanHandler) Add(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req addMealPlanEntryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	recipeID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("recipeId must be a valid UUID")
	}

	entry, err := h.mealPlanUsecase.AddEntry(c.Request().Context(), userID, usecase.AddMealPlanEntryInput{
		RecipeID:  recipeID,
		DayOfWeek: entity.DayOfWeek(req.DayOfWeek),
		MealType:  entity.MealType(req.MealType),
	})
	if err != nil {
		return err
	}

	return response.Created(c, toMealPlanEntryResponse(entry))
}

// List handles GET /api/meal-plans, ordered Monday through Sunday.
func (h *MealPlanHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	entries, err := h.mealPlanUsecase.ListEntries(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]mealPlanEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toMealPlanEntryResponse(&entries[i]))
	}

	return response.OK(c, out)
}

// Delete handles DELETE /api/meal-plans/:id.
func (h *MealPlanHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	if err := h.mealPlanUsecase.DeleteEntry(c.Request().Context(), userID, entryID); err != nil {
		return err
	}

	return response.OK(c, echo.Map{"deleted": true})
}
