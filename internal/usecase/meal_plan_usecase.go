package usecase

import (
	"context"

	"plateful/internal/domain/entity"

	"github.com/google/uuid"
)

// AddMealPlanEntryInput defines the data required to schedule a recipe.
type AddMealPlanEntryInput struct {
	RecipeID  uuid.UUID
	DayOfWeek entity.DayOfWeek
	MealType  entity.MealType
}

// MealPlanUsecase defines the interface for meal-plan operations.
type MealPlanUsecase interface {
	AddEntry(ctx context.Context, userID uuid.UUID, input AddMealPlanEntryInput) (*entity.MealPlanEntry, error)

	// ListEntries returns the user's plan joined with recipe details,
	// ordered Monday through Sunday.
	ListEntries(ctx context.Context, userID uuid.UUID) ([]entity.MealPlanEntry, error)

	DeleteEntry(ctx context.Context, userID, entryID uuid.UUID) error
}
