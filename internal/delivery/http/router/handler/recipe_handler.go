package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"plateful/internal/delivery/http/response"
	"plateful/internal/domain/entity"
	domainerrors "plateful/internal/domain/errors"
	"plateful/internal/usecase"
)

// RecipeHandler serves saved recipes and the upstream recipe search.
type RecipeHandler struct {
	recipeUsecase usecase.RecipeUsecase
	logger        *slog.Logger
}

// NewRecipeHandler creates a RecipeHandler.
func NewRecipeHandler(recipeUsecase usecase.RecipeUsecase, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeUsecase: recipeUsecase,
		logger:        logger,
	}
}

type saveRecipeRequest struct {
	SourceID    int64    `json:"sourceId" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required,max=255"`
	ImageURL    string   `json:"imageUrl" validate:"omitempty,max=2048"`
	Ingredients []string `json:"ingredients"`
}

type recipeResponse struct {
	ID          string    `json:"id"`
	SourceID    int64     `json:"sourceId"`
	Title       string    `json:"title"`
	ImageURL    string    `json:"imageUrl"`
	Ingredients []string  `json:"ingredients"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toRecipeResponse(recipe *entity.Recipe) recipeResponse {
	ingredients := recipe.Ingredients
	if ingredients == nil {
		ingredients = []string{}
	}

	return recipeResponse{
		ID:          recipe.ID.String(),
		SourceID:    recipe.SourceID,
		Title:       recipe.Title,
		ImageURL:    recipe.ImageURL,
		Ingredients: ingredients,
		CreatedAt:   recipe.CreatedAt,
	}
}

// Save handles POST /api/recipes.
func (h *RecipeHandler) Save(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req saveRecipeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	recipe, err := h.recipeUsecase.SaveRecipe(c.Request().Context(), userID, usecase.SaveRecipeInput{
		SourceID:    req.SourceID,
		Title:       req.Title,
		ImageURL:    req.ImageURL,
		Ingredients: req.Ingredients,
	})
	if err != nil {
		return err
	}

	return response.Created(c, toRecipeResponse(recipe))
}

// List handles GET /api/recipes.
func (h *RecipeHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	recipes, err := h.recipeUsecase.ListRecipes(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	out := make([]recipeResponse, 0, len(recipes))
	for i := range recipes {
		out = append(out, toRecipeResponse(&recipes[i]))
	}

	return response.OK(c, out)
}

// Delete handles DELETE /api/recipes/:id.
func (h *RecipeHandler) Delete(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	recipeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return domainerrors.ErrNotFound
	}

	if err := h.recipeUsecase.DeleteRecipe(c.Request().Context(), userID, recipeID); err != nil {
		return err
	}

	return response.OK(c, echo.Map{"deleted": true})
}

// Search handles GET /api/recipes/search/:ingredients. The upstream
// response body is forwarded to the client as-is.
func (h *RecipeHandler) Search(c echo.Context) error {
	ingredients := c.Param("ingredients")
	if ingredients == "" {
		return domainerrors.ErrValidationFailed.WithDetails("ingredients is required")
	}

	page := 1
	if raw := c.QueryParam("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return domainerrors.ErrValidationFailed.WithDetails("page must be a positive integer")
		}
		page = parsed
	}

	payload, err := h.recipeUsecase.SearchByIngredients(c.Request().Context(), ingredients, page)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, payload)
}

// Details handles GET /api/recipes/details/:id, proxying the upstream
// recipe-information endpoint.
func (h *RecipeHandler) Details(c echo.Context) error {
	sourceID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || sourceID <= 0 {
		return domainerrors.ErrValidationFailed.WithDetails("recipe id must be a positive integer")
	}

	payload, err := h.recipeUsecase.GetRecipeDetails(c.Request().Context(), sourceID)
	if err != nil {
		return err
	}

	return c.JSONBlob(http.StatusOK, payload)
}
