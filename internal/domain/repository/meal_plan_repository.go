package repository

import (
	"context"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// MealPlanRepository defines owner-scoped persistence for meal-plan entries.
type MealPlanRepository interface {
	// Create persists a new entry stamped with entry.UserID. The referenced
	// recipe must belong to the same user; a dangling or foreign recipe
	// reference returns ErrRecordNotFound.
	Create(ctx context.Context, entry *entity.MealPlanEntry) error

	// ListByUser returns the user's entries joined with their recipes
	// (title and image populated), ordered by day of week.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]entity.MealPlanEntry, error)

	// DeleteByIDAndUser removes an entry only when both ID and owner match;
	// zero affected rows returns ErrRecordNotFound.
	DeleteByIDAndUser(ctx context.Context, id, userID uuid.UUID) error

	// DeleteAllByUser removes every entry owned by the user.
	DeleteAllByUser(ctx context.Context, userID uuid.UUID) error
}
