package handler

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"plateful/internal/delivery/http/response"
	"plateful/internal/domain/entity"
	"plateful/internal/usecase"
)

// ShoppingListHandler serves the user's shopping list.
type ShoppingListHandler struct {
	shoppingListUsecase usecase.ShoppingListUsecase
	logger              *slog.Logger
}

// NewShoppingListHandler creates a ShoppingListHandler.
func NewShoppingListHandler(shoppingListUsecase usecase.ShoppingListUsecase, logger *slog.Logger) *ShoppingListHandler {
	return &ShoppingListHandler{
		shoppingListUsecase: shoppingListUsecase,
		logger:              logger,
	}
}

type replaceShoppingListRequest struct {
	// An empty or absent list is allowed: it clears the stored list.
	Ingredients []string `json:"ingredients"`
}

type shoppingListItemResponse struct {
	ID         string    `json:"id"`
	Ingredient string    `json:"ingredient"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toShoppingListResponse(items []entity.ShoppingListItem) []shoppingListItemResponse {
	out := make([]shoppingListItemResponse, 0, len(items))
	for i := range items {
		out = append(out, shoppingListItemResponse{
			ID:         items[i].ID.String(),
			Ingredient: items[i].Ingredient,
			CreatedAt:  items[i].CreatedAt,
		})
	}

	return out
}

// Replace handles POST /api/shopping-list. The submitted ingredient set
// replaces the stored list wholesale.
func (h *ShoppingListHandler) Replace(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req replaceShoppingListRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if err := c.Validate(&req); err != nil {
		return err
	}

	items, err := h.shoppingListUsecase.ReplaceList(c.Request().Context(), userID, req.Ingredients)
	if err != nil {
		return err
	}

	return response.OK(c, toShoppingListResponse(items))
}

// Get handles GET /api/shopping-list.
func (h *ShoppingListHandler) Get(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	items, err := h.shoppingListUsecase.GetList(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return response.OK(c, toShoppingListResponse(items))
}
