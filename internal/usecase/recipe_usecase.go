package usecase

import (
	"context"
	"encoding/json"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// SaveRecipeInput defines the data required to save a recipe for a user.
type SaveRecipeInput struct {
	SourceID    int64
	Title       string
	ImageURL    string
	Ingredients []string
}

// RecipeUsecase defines the interface for saved-recipe operations and the
// pass-through upstream search.
type RecipeUsecase interface {
	SaveRecipe(ctx context.Context, userID uuid.UUID, input SaveRecipeInput) (*entity.Recipe, error)
	ListRecipes(ctx context.Context, userID uuid.UUID) ([]entity.Recipe, error)
	DeleteRecipe(ctx context.Context, userID, recipeID uuid.UUID) error

	// SearchByIngredients proxies the upstream ingredient search. The raw
	// upstream JSON is returned to the client unmodified.
	SearchByIngredients(ctx context.Context, ingredients string, page int) (json.RawMessage, error)

	// GetRecipeDetails proxies the upstream recipe-information lookup.
	GetRecipeDetails(ctx context.Context, sourceID int64) (json.RawMessage, error)
}
