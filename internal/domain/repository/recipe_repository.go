package repository

import (
	"context"
	"errors"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecordNotFound is returned when an owner-scoped lookup or delete matches
// no rows. It intentionally does not distinguish "does not exist" from
// "exists under another owner".
var ErrRecordNotFound = errors.New("record not found")

// RecipeRepository defines owner-scoped persistence for saved recipes.
// Every method takes the owning user's ID as a mandatory filter.
type RecipeRepository interface {
	// Create persists a new recipe stamped with recipe.UserID.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// ListByUser returns all recipes saved by the given user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.Recipe, error)

	// FindByIDAndUser returns a recipe only when both the recipe ID and the
	// owner match; anything else is ErrRecordNotFound.
	FindByIDAndUser(ctx context.Context, id, userID uuid.UUID) (*entity.Recipe, error)

	// DeleteByIDAndUser removes a recipe only when both the recipe ID and the
	// owner match; a delete affecting zero rows returns ErrRecordNotFound.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error

	// DeleteAllByUser removes every recipe owned by the user. Used by account
	// deletion inside its cascading transaction.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}
